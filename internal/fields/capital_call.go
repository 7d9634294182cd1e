package fields

import "time"

// CapitalCallFields is the typed field set extracted from a capital call
// notice. Nil means the field did not resolve; the reconciler treats nil as
// "leave the stored value alone".
type CapitalCallFields struct {
	CallDate            *time.Time        `json:"call_date,omitempty"`
	DueDate             *time.Time        `json:"due_date,omitempty"`
	CallAmount          *float64          `json:"call_amount,omitempty"`
	CallPercentage      *float64          `json:"call_percentage,omitempty"`
	FundName            *string           `json:"fund_name,omitempty"`
	FundSize            *float64          `json:"fund_size,omitempty"`
	LPName              *string           `json:"lp_name,omitempty"`
	LPCommitment        *float64          `json:"lp_commitment,omitempty"`
	RemainingCommitment *float64          `json:"remaining_commitment,omitempty"`
	PaymentInstructions *string           `json:"payment_instructions,omitempty"`
	WireTransferInfo    map[string]string `json:"wire_transfer_info,omitempty"`
}

// ExtractCapitalCall runs the capital-call extractor set. A field that fails
// to parse resolves to nil; it never aborts the remaining fields.
func (e *Engine) ExtractCapitalCall(text string) CapitalCallFields {
	f := CapitalCallFields{
		CallDate:            e.extractDate(text, []string{"call date", "notice date", "date"}),
		DueDate:             e.extractDate(text, []string{"due date", "payment due", "deadline"}),
		CallAmount:          e.extractAmount(text, []string{"call amount", "contribution", "capital call"}),
		LPCommitment:        e.extractAmount(text, []string{"commitment", "total commitment"}),
		RemainingCommitment: e.extractAmount(text, []string{"remaining commitment", "outstanding"}),
		CallPercentage:      e.extractPercentage(text, []string{"call percentage", "contribution percentage"}),
		FundName:            e.extractFundName(text),
		FundSize:            e.extractAmount(text, []string{"fund size", "total commitments"}),
		LPName:              e.extractLPName(text),
		PaymentInstructions: e.extractPaymentInstructions(text),
		WireTransferInfo:    e.extractWireTransferInfo(text),
	}

	set, total := f.Coverage()
	e.logger.Info("capital call fields extracted", "fields_set", set, "fields_total", total)
	return f
}

// Coverage reports how many fields resolved, used for the confidence score.
func (f CapitalCallFields) Coverage() (set, total int) {
	total = 11
	if f.CallDate != nil {
		set++
	}
	if f.DueDate != nil {
		set++
	}
	if f.CallAmount != nil {
		set++
	}
	if f.CallPercentage != nil {
		set++
	}
	if f.FundName != nil {
		set++
	}
	if f.FundSize != nil {
		set++
	}
	if f.LPName != nil {
		set++
	}
	if f.LPCommitment != nil {
		set++
	}
	if f.RemainingCommitment != nil {
		set++
	}
	if f.PaymentInstructions != nil {
		set++
	}
	if f.WireTransferInfo != nil {
		set++
	}
	return set, total
}
