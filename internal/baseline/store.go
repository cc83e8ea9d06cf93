// Package baseline reads the stored companies, products and rates a parsed
// schedule is reconciled against.
package baseline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// ErrCompanyNotFound is returned when no stored company matches a name
var ErrCompanyNotFound = errors.New("company not found")

// Store is the read-only baseline collaborator
type Store interface {
	// FindCompany resolves a company by case-insensitive name
	FindCompany(ctx context.Context, name string) (*types.Company, error)
	ListProducts(ctx context.Context, companyID string) ([]types.Product, error)
	// ListRates returns every rate belonging to the company's products
	ListRates(ctx context.Context, companyID string) ([]types.Rate, error)
}

// Snapshot is the stored state for one company at load time
type Snapshot struct {
	Company  *types.Company
	Products []types.Product
	Rates    []types.Rate
}

// Companies returns the resolved company as a list, empty when none matched
func (s *Snapshot) Companies() []types.Company {
	if s == nil || s.Company == nil {
		return nil
	}
	return []types.Company{*s.Company}
}

// Load resolves a company and fetches its products and rates concurrently.
// An unknown company yields an empty snapshot, not an error.
func Load(ctx context.Context, store Store, companyName string) (*Snapshot, error) {
	company, err := store.FindCompany(ctx, companyName)
	if errors.Is(err, ErrCompanyNotFound) {
		log.Debug().Str("company", companyName).Msg("No stored company, baseline is empty")
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company: %w", err)
	}

	snap := &Snapshot{Company: company}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := store.ListProducts(gctx, company.ID)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		snap.Products = products
		return nil
	})
	g.Go(func() error {
		rates, err := store.ListRates(gctx, company.ID)
		if err != nil {
			return fmt.Errorf("list rates: %w", err)
		}
		snap.Rates = rates
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("company", company.Name).
		Int("products", len(snap.Products)).
		Int("rates", len(snap.Rates)).
		Msg("Loaded baseline")
	return snap, nil
}
