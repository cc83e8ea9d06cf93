package validation

import (
	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// baseline indexes the stored state by natural key. Building it once per
// validation run keeps every lookup explicit and O(1).
type baseline struct {
	companies map[string]types.Company
	products  map[string]types.Product
	rates     map[string]types.Rate
}

func newBaseline(companies []types.Company, products []types.Product, rates []types.Rate) *baseline {
	b := &baseline{
		companies: make(map[string]types.Company, len(companies)),
		products:  make(map[string]types.Product, len(products)),
		rates:     make(map[string]types.Rate, len(rates)),
	}
	// First stored entry wins on key collisions
	for _, c := range companies {
		key := identity.NormalizeName(c.Name)
		if _, ok := b.companies[key]; !ok {
			b.companies[key] = c
		}
	}
	for _, p := range products {
		key := identity.StoredProductKey(p.CompanyID, p.Name, p.FeeValue)
		if _, ok := b.products[key]; !ok {
			b.products[key] = p
		}
	}
	for _, r := range rates {
		key := identity.RateKey(r.ProductID, r.Tariff, r.ConsumptionMin, r.ConsumptionMax)
		if _, ok := b.rates[key]; !ok {
			b.rates[key] = r
		}
	}
	return b
}

// companyByName resolves a company case-insensitively
func (b *baseline) companyByName(name string) (types.Company, bool) {
	c, ok := b.companies[identity.NormalizeName(name)]
	return c, ok
}

// productByKey resolves a product by (companyID, name, fee)
func (b *baseline) productByKey(companyID, name string, fee *float64) (types.Product, bool) {
	p, ok := b.products[identity.StoredProductKey(companyID, name, fee)]
	return p, ok
}

// rateByKey resolves a rate by (productID, tariff, min, max)
func (b *baseline) rateByKey(productID string, tariff types.TariffCode, min, max float64) (types.Rate, bool) {
	r, ok := b.rates[identity.RateKey(productID, tariff, min, max)]
	return r, ok
}

// reconciler classifies parsed products and rates against the resolved company
type reconciler struct {
	baseline *baseline
	company  *types.Company
}

// matchProduct returns the stored product a parsed product updates, if any
func (r *reconciler) matchProduct(p types.ParsedProduct) (types.Product, bool) {
	if r.company == nil {
		return types.Product{}, false
	}
	return r.baseline.productByKey(r.company.ID, p.Name, p.FeeValue)
}

// isUpdate reports whether a parsed rate replaces a stored rate of the matched product
func (r *reconciler) isUpdate(stored *types.Product, tariff types.TariffCode, rate types.RateRow) bool {
	if stored == nil {
		return false
	}
	_, ok := r.baseline.rateByKey(stored.ID, tariff, rate.ConsumptionMin, rate.ConsumptionMax)
	return ok
}

// nameList keeps names in first-seen order, once per normalized name
type nameList struct {
	seen  map[string]bool
	names []string
}

func newNameList() *nameList {
	return &nameList{seen: make(map[string]bool), names: make([]string, 0)}
}

func (l *nameList) add(name string) {
	key := identity.NormalizeName(name)
	if l.seen[key] {
		return
	}
	l.seen[key] = true
	l.names = append(l.names, name)
}
