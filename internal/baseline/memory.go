package baseline

import (
	"context"
	"sync"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// MemoryStore is an in-process Store, used for YAML fixtures and tests
type MemoryStore struct {
	mu        sync.RWMutex
	companies []types.Company
	products  []types.Product
	rates     []types.Rate
}

// NewMemoryStore creates a store over the given rows
func NewMemoryStore(companies []types.Company, products []types.Product, rates []types.Rate) *MemoryStore {
	return &MemoryStore{
		companies: append([]types.Company(nil), companies...),
		products:  append([]types.Product(nil), products...),
		rates:     append([]types.Rate(nil), rates...),
	}
}

// FindCompany returns the first company whose folded name matches
func (m *MemoryStore) FindCompany(_ context.Context, name string) (*types.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := identity.NormalizeName(name)
	for _, c := range m.companies {
		if identity.NormalizeName(c.Name) == key {
			company := c
			return &company, nil
		}
	}
	return nil, ErrCompanyNotFound
}

func (m *MemoryStore) ListProducts(_ context.Context, companyID string) ([]types.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Product, 0)
	for _, p := range m.products {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListRates(_ context.Context, companyID string) ([]types.Rate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := make(map[string]bool)
	for _, p := range m.products {
		if p.CompanyID == companyID {
			owned[p.ID] = true
		}
	}
	out := make([]types.Rate, 0)
	for _, r := range m.rates {
		if owned[r.ProductID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// Len reports how many companies, products and rates the store holds
func (m *MemoryStore) Len() (companies, products, rates int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.companies), len(m.products), len(m.rates)
}
