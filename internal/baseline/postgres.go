package baseline

import (
	"context"
	"errors"

	"github.com/viiteer2708/mega-energia-sub001/internal/database"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// PostgresStore reads the baseline from the commission tables
type PostgresStore struct {
	db database.DBTX
}

// NewPostgresStore creates a store over a pgx pool, connection or transaction
func NewPostgresStore(db database.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindCompany(ctx context.Context, name string) (*types.Company, error) {
	c, err := database.FindCompanyByName(ctx, s.db, name)
	if errors.Is(err, database.ErrNoCompany) {
		return nil, ErrCompanyNotFound
	}
	return c, err
}

func (s *PostgresStore) ListProducts(ctx context.Context, companyID string) ([]types.Product, error) {
	return database.ListProductsByCompany(ctx, s.db, companyID)
}

func (s *PostgresStore) ListRates(ctx context.Context, companyID string) ([]types.Rate, error) {
	return database.ListRatesByCompany(ctx, s.db, companyID)
}
