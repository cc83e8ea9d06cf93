package baseline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

func acmeStore() *MemoryStore {
	return NewMemoryStore(
		[]types.Company{
			{ID: "c1", Name: "Acme Energía", CommissionModel: types.CommissionModelTable},
			{ID: "c2", Name: "Other"},
		},
		[]types.Product{
			{ID: "p1", CompanyID: "c1", Name: "Basic"},
			{ID: "p2", CompanyID: "c1", Name: "Basic", FeeValue: types.Float64Ptr(0)},
			{ID: "p3", CompanyID: "c2", Name: "Foreign"},
		},
		[]types.Rate{
			{ID: "r1", ProductID: "p1", Tariff: "2.0TD", ConsumptionMin: 1, ConsumptionMax: 5000, GrossAmount: 10},
			{ID: "r2", ProductID: "p2", Tariff: "2.0TD", ConsumptionMin: 1, ConsumptionMax: 5000, GrossAmount: 11},
			{ID: "r3", ProductID: "p3", Tariff: "2.0TD", ConsumptionMin: 1, ConsumptionMax: 5000, GrossAmount: 12},
		},
	)
}

func TestMemoryStoreFindCompany(t *testing.T) {
	store := acmeStore()
	ctx := context.Background()

	c, err := store.FindCompany(ctx, "  acme   ENERGÍA ")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)

	_, err = store.FindCompany(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestMemoryStoreListsAreCompanyScoped(t *testing.T) {
	store := acmeStore()
	ctx := context.Background()

	products, err := store.ListProducts(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	rates, err := store.ListRates(ctx, "c1")
	require.NoError(t, err)
	ids := []string{}
	for _, r := range rates {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r1", "r2"}, ids)
}

func TestLoad(t *testing.T) {
	snap, err := Load(context.Background(), acmeStore(), "ACME ENERGÍA")
	require.NoError(t, err)

	require.NotNil(t, snap.Company)
	assert.Equal(t, "c1", snap.Company.ID)
	assert.Len(t, snap.Products, 2)
	assert.Len(t, snap.Rates, 2)
	assert.Equal(t, []types.Company{*snap.Company}, snap.Companies())
}

func TestLoadUnknownCompanyIsEmpty(t *testing.T) {
	snap, err := Load(context.Background(), acmeStore(), "Nobody")
	require.NoError(t, err)

	assert.Nil(t, snap.Company)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Rates)
	assert.Nil(t, snap.Companies())
}

type failingStore struct {
	*MemoryStore
	findErr  error
	ratesErr error
}

func (f failingStore) FindCompany(ctx context.Context, name string) (*types.Company, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.MemoryStore.FindCompany(ctx, name)
}

func (f failingStore) ListRates(ctx context.Context, companyID string) ([]types.Rate, error) {
	if f.ratesErr != nil {
		return nil, f.ratesErr
	}
	return f.MemoryStore.ListRates(ctx, companyID)
}

func TestLoadPropagatesErrors(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := Load(context.Background(), failingStore{MemoryStore: acmeStore(), findErr: boom}, "Acme Energía")
	assert.ErrorIs(t, err, boom)

	_, err = Load(context.Background(), failingStore{MemoryStore: acmeStore(), ratesErr: boom}, "Acme Energía")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list rates")
}
