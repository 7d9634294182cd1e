package reconcile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
)

func ptr[T any](v T) *T { return &v }

func TestMergeCapitalCallKeepsStoredValuesOnNilExtraction(t *testing.T) {
	stored := entity.CapitalCallDetail{
		DocumentID:   uuid.New(),
		CallAmount:   ptr(50000.0),
		FundName:     ptr("Growth Equity Partners III"),
		LPCommitment: ptr(1000000.0),
	}

	merged := MergeCapitalCall(stored, fields.CapitalCallFields{})

	require.NotNil(t, merged.CallAmount)
	assert.Equal(t, 50000.0, *merged.CallAmount)
	require.NotNil(t, merged.FundName)
	assert.Equal(t, "Growth Equity Partners III", *merged.FundName)
	require.NotNil(t, merged.LPCommitment)
	assert.Equal(t, 1000000.0, *merged.LPCommitment)
}

func TestMergeCapitalCallExtractedValueWins(t *testing.T) {
	stored := entity.CapitalCallDetail{
		CallAmount: ptr(100.0),
	}
	extracted := fields.CapitalCallFields{
		CallAmount: ptr(50000.0),
		DueDate:    ptr(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
	}

	merged := MergeCapitalCall(stored, extracted)

	assert.Equal(t, 50000.0, *merged.CallAmount)
	require.NotNil(t, merged.DueDate)
	assert.True(t, extracted.DueDate.Equal(*merged.DueDate))
}

func TestMergeCapitalCallIsIdempotent(t *testing.T) {
	extracted := fields.CapitalCallFields{
		CallAmount:       ptr(50000.0),
		FundName:         ptr("Growth Equity Partners III"),
		WireTransferInfo: map[string]string{"bank_name": "First National"},
	}

	once := MergeCapitalCall(entity.CapitalCallDetail{}, extracted)
	twice := MergeCapitalCall(once, extracted)

	assert.Equal(t, once, twice)
}

func TestMergeDistribution(t *testing.T) {
	stored := entity.DistributionDetail{
		DistributionAmount: ptr(25000.0),
		PaymentMethod:      ptr("wire transfer"),
	}
	extracted := fields.DistributionFields{
		IRR:      ptr(12.4),
		Multiple: ptr(1.8),
	}

	merged := MergeDistribution(stored, extracted)

	// stored values survive, extracted values land
	require.NotNil(t, merged.DistributionAmount)
	assert.Equal(t, 25000.0, *merged.DistributionAmount)
	require.NotNil(t, merged.PaymentMethod)
	assert.Equal(t, "wire transfer", *merged.PaymentMethod)
	require.NotNil(t, merged.IRR)
	assert.Equal(t, 12.4, *merged.IRR)
	require.NotNil(t, merged.Multiple)
	assert.Equal(t, 1.8, *merged.Multiple)
}

func TestAuditJSONAcceptsDeclaredFields(t *testing.T) {
	f := fields.CapitalCallFields{
		CallAmount: ptr(50000.0),
		FundName:   ptr("Growth Equity Partners III"),
	}
	data, err := auditJSON(f, capitalCallAuditSchema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "call_amount")
}

func TestAuditJSONRejectsUndeclaredFields(t *testing.T) {
	blob := map[string]any{
		"call_amount": 50000.0,
		"surprise":    "not in the schema",
	}
	_, err := auditJSON(blob, capitalCallAuditSchema)
	assert.Error(t, err)
}

func TestAuditJSONDistributionRoundTrip(t *testing.T) {
	f := fields.DistributionFields{
		DistributionAmount: ptr(25000.0),
		IRR:                ptr(12.4),
		PaymentMethod:      ptr("ach"),
	}
	data, err := auditJSON(f, distributionAuditSchema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "irr")
}
