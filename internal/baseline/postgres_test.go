package baseline

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/viiteer2708/mega-energia-sub001/internal/database"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "Failed to start postgres container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err, "Failed to create connection pool")

	require.NoError(t, database.Migrate(ctx, pool), "Failed to run migrations")

	cleanup := func() {
		pool.Close()
		testcontainers.TerminateContainer(container)
	}
	return pool, cleanup
}

func TestPostgresStore(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, database.InsertCompany(ctx, pool, types.Company{ID: "c1", Name: "Acme  Energía", CommissionModel: types.CommissionModelFormula, GNEWMarginPct: 12.5}))
	require.NoError(t, database.InsertCompany(ctx, pool, types.Company{ID: "c2", Name: "Other"}))
	require.NoError(t, database.InsertProduct(ctx, pool, types.Product{ID: "p1", CompanyID: "c1", Name: "Basic"}))
	require.NoError(t, database.InsertProduct(ctx, pool, types.Product{ID: "p2", CompanyID: "c1", Name: "Basic", FeeValue: types.Float64Ptr(0), FeeLabel: types.StringPtr("0")}))
	require.NoError(t, database.InsertProduct(ctx, pool, types.Product{ID: "p3", CompanyID: "c2", Name: "Foreign"}))
	require.NoError(t, database.InsertRate(ctx, pool, types.Rate{ID: "r1", ProductID: "p1", Tariff: "2.0TD", ConsumptionMin: 1, ConsumptionMax: 5000, GrossAmount: 10}))
	require.NoError(t, database.InsertRate(ctx, pool, types.Rate{ID: "r2", ProductID: "p2", Tariff: "3.0TD", ConsumptionMin: 1, ConsumptionMax: 5000, GrossAmount: 11}))
	require.NoError(t, database.InsertRate(ctx, pool, types.Rate{ID: "r3", ProductID: "p3", Tariff: "2.0TD", ConsumptionMin: 1, ConsumptionMax: 5000, GrossAmount: 12}))

	store := NewPostgresStore(pool)

	snap, err := Load(ctx, store, "acme energía")
	require.NoError(t, err)
	require.NotNil(t, snap.Company)
	assert.Equal(t, "c1", snap.Company.ID)
	assert.Equal(t, types.CommissionModelFormula, snap.Company.CommissionModel)
	assert.Equal(t, 12.5, snap.Company.GNEWMarginPct)

	require.Len(t, snap.Products, 2)
	assert.Nil(t, snap.Products[0].FeeValue)
	require.NotNil(t, snap.Products[1].FeeValue)
	assert.Equal(t, 0.0, *snap.Products[1].FeeValue)

	require.Len(t, snap.Rates, 2)
	assert.Equal(t, types.TariffCode("3.0TD"), snap.Rates[1].Tariff)

	_, err = store.FindCompany(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}
