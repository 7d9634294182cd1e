package fields

import "time"

// DistributionFields is the typed field set extracted from a distribution
// notice.
type DistributionFields struct {
	DistributionDate     *time.Time `json:"distribution_date,omitempty"`
	RecordDate           *time.Time `json:"record_date,omitempty"`
	DistributionAmount   *float64   `json:"distribution_amount,omitempty"`
	LPDistributionAmount *float64   `json:"lp_distribution_amount,omitempty"`
	DistributionPerUnit  *float64   `json:"distribution_per_unit,omitempty"`
	FundName             *string    `json:"fund_name,omitempty"`
	FundNAV              *float64   `json:"fund_nav,omitempty"`
	TotalDistributions   *float64   `json:"total_distributions,omitempty"`
	LPName               *string    `json:"lp_name,omitempty"`
	LPUnits              *float64   `json:"lp_units,omitempty"`
	IRR                  *float64   `json:"irr,omitempty"`
	Multiple             *float64   `json:"multiple,omitempty"`
	PaymentMethod        *string    `json:"payment_method,omitempty"`
	PaymentInstructions  *string    `json:"payment_instructions,omitempty"`
}

// ExtractDistribution runs the distribution extractor set.
func (e *Engine) ExtractDistribution(text string) DistributionFields {
	f := DistributionFields{
		DistributionDate:     e.extractDate(text, []string{"distribution date", "payment date"}),
		RecordDate:           e.extractDate(text, []string{"record date", "ex-date"}),
		DistributionAmount:   e.extractAmount(text, []string{"distribution amount", "distribution"}),
		LPDistributionAmount: e.extractAmount(text, []string{"your distribution", "distribution to"}),
		DistributionPerUnit:  e.extractAmount(text, []string{"per unit", "per share"}),
		FundName:             e.extractFundName(text),
		FundNAV:              e.extractAmount(text, []string{"nav", "net asset value"}),
		TotalDistributions:   e.extractAmount(text, []string{"total distributions"}),
		LPName:               e.extractLPName(text),
		LPUnits:              e.extractAmount(text, []string{"units", "shares", "partnership units"}),
		IRR:                  e.extractPercentage(text, []string{"irr", "internal rate of return"}),
		Multiple:             e.extractAmount(text, []string{"multiple", "total return multiple"}),
		PaymentMethod:        e.extractPaymentMethod(text),
		PaymentInstructions:  e.extractPaymentInstructions(text),
	}

	set, total := f.Coverage()
	e.logger.Info("distribution fields extracted", "fields_set", set, "fields_total", total)
	return f
}

func (f DistributionFields) Coverage() (set, total int) {
	total = 14
	if f.DistributionDate != nil {
		set++
	}
	if f.RecordDate != nil {
		set++
	}
	if f.DistributionAmount != nil {
		set++
	}
	if f.LPDistributionAmount != nil {
		set++
	}
	if f.DistributionPerUnit != nil {
		set++
	}
	if f.FundName != nil {
		set++
	}
	if f.FundNAV != nil {
		set++
	}
	if f.TotalDistributions != nil {
		set++
	}
	if f.LPName != nil {
		set++
	}
	if f.LPUnits != nil {
		set++
	}
	if f.IRR != nil {
		set++
	}
	if f.Multiple != nil {
		set++
	}
	if f.PaymentMethod != nil {
		set++
	}
	if f.PaymentInstructions != nil {
		set++
	}
	return set, total
}
