package reconcile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyescodes/doc-parser-updated/internal/common"
	"github.com/shreyescodes/doc-parser-updated/internal/entity"
	"github.com/shreyescodes/doc-parser-updated/internal/fields"
)

type fakeDetailRepo struct {
	capitalCalls  map[uuid.UUID]*entity.CapitalCallDetail
	distributions map[uuid.UUID]*entity.DistributionDetail
	saves         int
}

func newFakeDetailRepo() *fakeDetailRepo {
	return &fakeDetailRepo{
		capitalCalls:  map[uuid.UUID]*entity.CapitalCallDetail{},
		distributions: map[uuid.UUID]*entity.DistributionDetail{},
	}
}

func (f *fakeDetailRepo) GetCapitalCall(_ context.Context, id uuid.UUID) (*entity.CapitalCallDetail, error) {
	if d, ok := f.capitalCalls[id]; ok {
		c := *d
		return &c, nil
	}
	return nil, common.NewAppError("DETAIL_NOT_FOUND", id.String(), common.ErrNotFound)
}

func (f *fakeDetailRepo) SaveCapitalCall(_ context.Context, d *entity.CapitalCallDetail) (*entity.CapitalCallDetail, error) {
	c := *d
	f.capitalCalls[d.DocumentID] = &c
	f.saves++
	return &c, nil
}

func (f *fakeDetailRepo) ListCapitalCalls(context.Context) ([]*entity.CapitalCallDetail, error) {
	var out []*entity.CapitalCallDetail
	for _, d := range f.capitalCalls {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDetailRepo) GetDistribution(_ context.Context, id uuid.UUID) (*entity.DistributionDetail, error) {
	if d, ok := f.distributions[id]; ok {
		c := *d
		return &c, nil
	}
	return nil, common.NewAppError("DETAIL_NOT_FOUND", id.String(), common.ErrNotFound)
}

func (f *fakeDetailRepo) SaveDistribution(_ context.Context, d *entity.DistributionDetail) (*entity.DistributionDetail, error) {
	c := *d
	f.distributions[d.DocumentID] = &c
	f.saves++
	return &c, nil
}

func (f *fakeDetailRepo) ListDistributions(context.Context) ([]*entity.DistributionDetail, error) {
	var out []*entity.DistributionDetail
	for _, d := range f.distributions {
		out = append(out, d)
	}
	return out, nil
}

func TestReconcileCapitalCallCreatesRecord(t *testing.T) {
	repo := newFakeDetailRepo()
	r := NewReconciler(repo, nil)
	docID := uuid.New()

	saved, err := r.ReconcileCapitalCall(context.Background(), docID, fields.CapitalCallFields{
		CallAmount: ptr(50000.0),
	})
	require.NoError(t, err)
	assert.Equal(t, docID, saved.DocumentID)
	require.NotNil(t, saved.CallAmount)
	assert.Equal(t, 50000.0, *saved.CallAmount)
	assert.NotNil(t, saved.ExtractedData)
	assert.Len(t, repo.capitalCalls, 1)
}

func TestReconcileCapitalCallMergesIntoExisting(t *testing.T) {
	repo := newFakeDetailRepo()
	r := NewReconciler(repo, nil)
	docID := uuid.New()
	repo.capitalCalls[docID] = &entity.CapitalCallDetail{
		DocumentID: docID,
		FundName:   ptr("Growth Equity Partners III"),
		CallAmount: ptr(100.0),
	}

	saved, err := r.ReconcileCapitalCall(context.Background(), docID, fields.CapitalCallFields{
		CallAmount: ptr(50000.0),
	})
	require.NoError(t, err)

	// re-extraction updates what it found and keeps what it did not
	assert.Equal(t, 50000.0, *saved.CallAmount)
	require.NotNil(t, saved.FundName)
	assert.Equal(t, "Growth Equity Partners III", *saved.FundName)
	assert.Len(t, repo.capitalCalls, 1)
}

func TestReconcileCapitalCallIsIdempotent(t *testing.T) {
	repo := newFakeDetailRepo()
	r := NewReconciler(repo, nil)
	docID := uuid.New()
	f := fields.CapitalCallFields{
		CallAmount: ptr(50000.0),
		FundName:   ptr("Growth Equity Partners III"),
	}

	first, err := r.ReconcileCapitalCall(context.Background(), docID, f)
	require.NoError(t, err)
	second, err := r.ReconcileCapitalCall(context.Background(), docID, f)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.capitalCalls, 1)
}

func TestReconcileDistributionCreatesRecord(t *testing.T) {
	repo := newFakeDetailRepo()
	r := NewReconciler(repo, nil)
	docID := uuid.New()

	saved, err := r.ReconcileDistribution(context.Background(), docID, fields.DistributionFields{
		DistributionAmount: ptr(25000.0),
		IRR:                ptr(12.4),
	})
	require.NoError(t, err)
	assert.Equal(t, docID, saved.DocumentID)
	require.NotNil(t, saved.DistributionAmount)
	assert.Equal(t, 25000.0, *saved.DistributionAmount)
	assert.NotNil(t, saved.ExtractedData)
}
