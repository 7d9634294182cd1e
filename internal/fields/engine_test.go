package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractDate(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name     string
		text     string
		keywords []string
		want     *time.Time
	}{
		{
			name:     "slash format",
			text:     "Due Date: 03/15/2024",
			keywords: []string{"due date"},
			want:     ptr(date(2024, time.March, 15)),
		},
		{
			name:     "dash format",
			text:     "Due Date: 03-15-2024",
			keywords: []string{"due date"},
			want:     ptr(date(2024, time.March, 15)),
		},
		{
			name:     "iso format",
			text:     "Record Date: 2024-03-15",
			keywords: []string{"record date"},
			want:     ptr(date(2024, time.March, 15)),
		},
		{
			name:     "two digit year",
			text:     "Call Date: 03/15/24",
			keywords: []string{"call date"},
			want:     ptr(date(2024, time.March, 15)),
		},
		{
			name:     "keyword on another line than the date",
			text:     "The due date is noted below.\nPlease remit by next week.",
			keywords: []string{"due date"},
			want:     nil,
		},
		{
			name:     "no keyword match",
			text:     "Payment: 03/15/2024",
			keywords: []string{"due date"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.extractDate(tt.text, tt.keywords)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestExtractAmount(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name     string
		text     string
		keywords []string
		want     *float64
	}{
		{
			name:     "dollar amount with thousands separators",
			text:     "Call Amount: $50,000.00",
			keywords: []string{"call amount"},
			want:     ptr(50000.0),
		},
		{
			name:     "dollar amount without cents",
			text:     "Total Commitment: $1,000,000",
			keywords: []string{"commitment"},
			want:     ptr(1000000.0),
		},
		{
			name:     "bare number",
			text:     "Remaining Commitment: 750000",
			keywords: []string{"remaining commitment"},
			want:     ptr(750000.0),
		},
		{
			name:     "first keyword wins over later lines",
			text:     "Call Amount: $100.00\nCall Amount: $200.00",
			keywords: []string{"call amount"},
			want:     ptr(100.0),
		},
		{
			name:     "keyword line without a number",
			text:     "Call Amount: pending",
			keywords: []string{"call amount"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.extractAmount(tt.text, tt.keywords)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestExtractPercentage(t *testing.T) {
	e := NewEngine(nil)

	got := e.extractPercentage("Call Percentage: 5.5%", []string{"call percentage"})
	require.NotNil(t, got)
	assert.InDelta(t, 5.5, *got, 1e-9)

	assert.Nil(t, e.extractPercentage("Call Percentage: five percent", []string{"call percentage"}))
}

func TestExtractFundName(t *testing.T) {
	e := NewEngine(nil)

	got := e.extractFundName("fund: Growth Equity Partners III\nDear Investor,")
	require.NotNil(t, got)
	assert.Equal(t, "Growth Equity Partners III", *got)

	// the anchor is case-sensitive; an uppercase label does not match
	assert.Nil(t, e.extractFundName("Fund: Growth Equity Partners III"))
	assert.Nil(t, e.extractFundName("no capitalized name follows the fund label"))
}

func TestExtractLPName(t *testing.T) {
	e := NewEngine(nil)

	got := e.extractLPName("Dear Acme Pension Trust,\nWe write to notify you...")
	require.NotNil(t, got)
	assert.Equal(t, "Acme Pension Trust", *got)

	got = e.extractLPName("To: Beta Family Office\nNotice follows")
	require.NotNil(t, got)
	assert.Equal(t, "Beta Family Office", *got)
}

func TestExtractPaymentInstructions(t *testing.T) {
	e := NewEngine(nil)

	text := "Payment Instructions:\n" +
		"Bank Name: First National\n" +
		"Account Number: 12345678\n" +
		"\n" +
		"Sincerely,\n" +
		"The Fund Team"
	got := e.extractPaymentInstructions(text)
	require.NotNil(t, got)
	assert.Equal(t, "Bank Name: First National\nAccount Number: 12345678", *got)
	assert.NotContains(t, *got, "Sincerely")
}

func TestExtractPaymentInstructionsCapsBlockLength(t *testing.T) {
	e := NewEngine(nil)

	text := "Wire Instructions:\n" +
		"l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10\nl11"
	got := e.extractPaymentInstructions(text)
	require.NotNil(t, got)
	assert.Contains(t, *got, "l9")
	assert.NotContains(t, *got, "l10")
}

func TestExtractWireTransferInfo(t *testing.T) {
	e := NewEngine(nil)

	text := "Bank Name: First National Bank\n" +
		"Account Number: 987654321\n" +
		"Routing Number: 021000021\n" +
		"SWIFT: FNBAUS33\n" +
		"Beneficiary: Growth Fund III LP"
	got := e.extractWireTransferInfo(text)
	require.NotNil(t, got)
	assert.Equal(t, map[string]string{
		"bank_name":      "First National Bank",
		"account_number": "987654321",
		"routing_number": "021000021",
		"swift_code":     "FNBAUS33",
		"beneficiary":    "Growth Fund III LP",
	}, got)

	assert.Nil(t, e.extractWireTransferInfo("nothing bank-like here"))
}

func TestExtractPaymentMethod(t *testing.T) {
	e := NewEngine(nil)

	got := e.extractPaymentMethod("Funds will be sent via Wire Transfer to your account.")
	require.NotNil(t, got)
	assert.Equal(t, "wire transfer", *got)

	assert.Nil(t, e.extractPaymentMethod("payment details to follow"))
}

func TestExtractCapitalCall(t *testing.T) {
	e := NewEngine(nil)

	text := "CAPITAL CALL NOTICE\n" +
		"fund: Growth Equity Partners III\n" +
		"Dear Acme Pension Trust,\n" +
		"Call Amount: $50,000.00\n" +
		"Due Date: 03/15/2024\n" +
		"Call Percentage: 5%\n" +
		"Payment Instructions:\n" +
		"Bank Name: First National\n" +
		"Account Number: 12345678\n"
	f := e.ExtractCapitalCall(text)

	require.NotNil(t, f.CallAmount)
	assert.InDelta(t, 50000.0, *f.CallAmount, 1e-9)
	require.NotNil(t, f.DueDate)
	assert.True(t, date(2024, time.March, 15).Equal(*f.DueDate))
	require.NotNil(t, f.CallPercentage)
	assert.InDelta(t, 5.0, *f.CallPercentage, 1e-9)
	require.NotNil(t, f.FundName)
	assert.Equal(t, "Growth Equity Partners III", *f.FundName)
	require.NotNil(t, f.LPName)
	assert.Equal(t, "Acme Pension Trust", *f.LPName)
	require.NotNil(t, f.PaymentInstructions)
	require.NotNil(t, f.WireTransferInfo)

	set, total := f.Coverage()
	assert.Equal(t, 11, total)
	assert.GreaterOrEqual(t, set, 7)
}

func TestExtractDistribution(t *testing.T) {
	e := NewEngine(nil)

	text := "DISTRIBUTION NOTICE\n" +
		"Fund: Income Opportunities Fund\n" +
		"Distribution Date: 2024-06-30\n" +
		"Distribution Amount: $25,000.00\n" +
		"Your Distribution: $1,250.00\n" +
		"IRR: 12.4%\n" +
		"Payment will be made by ACH.\n"
	f := e.ExtractDistribution(text)

	require.NotNil(t, f.DistributionDate)
	assert.True(t, date(2024, time.June, 30).Equal(*f.DistributionDate))
	require.NotNil(t, f.DistributionAmount)
	assert.InDelta(t, 25000.0, *f.DistributionAmount, 1e-9)
	require.NotNil(t, f.LPDistributionAmount)
	assert.InDelta(t, 1250.0, *f.LPDistributionAmount, 1e-9)
	require.NotNil(t, f.IRR)
	assert.InDelta(t, 12.4, *f.IRR, 1e-9)
	require.NotNil(t, f.PaymentMethod)
	assert.Equal(t, "ach", *f.PaymentMethod)

	_, total := f.Coverage()
	assert.Equal(t, 14, total)
}

func TestExtractFundInfo(t *testing.T) {
	e := NewEngine(nil)

	info := e.ExtractFundInfo("Fund Name: Growth Equity Partners III\nFund ID: GEP-3\nFund Size: $500M")
	require.NotNil(t, info.FundName)
	assert.Equal(t, "Growth Equity Partners III", *info.FundName)
	require.NotNil(t, info.FundID)
	assert.Equal(t, "GEP-3", *info.FundID)
	require.NotNil(t, info.FundSize)
	assert.Equal(t, "$500M", *info.FundSize)

	empty := e.ExtractFundInfo("nothing useful")
	assert.Nil(t, empty.FundName)
	assert.Nil(t, empty.FundID)
	assert.Nil(t, empty.FundSize)
}

func ptr[T any](v T) *T { return &v }
