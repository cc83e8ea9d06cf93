// Package validation checks a parsed commission schedule against business
// rules and reconciles it with the stored baseline.
//
// Validate is pure and total: it never returns an error and never stops at
// the first problem, so operator tooling can show the whole report at once.
package validation

import (
	"fmt"
	"strings"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/tariffs"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// headerRows is the number of rows above the first data row of a tariff sheet
const headerRows = 2

// report collects findings in check order
type report struct {
	errors   []types.Finding
	warnings []types.Finding
}

func (r *report) addError(f types.Finding) {
	r.errors = append(r.errors, f)
}

func (r *report) addWarning(f types.Finding) {
	r.warnings = append(r.warnings, f)
}

// Validate checks a parsed schedule and classifies its products and rates
// against the existing companies, products and rates. rates may be nil.
func Validate(parsed *types.ParsedSchedule, companies []types.Company, products []types.Product, rates []types.Rate) *types.ValidationResult {
	if parsed == nil {
		parsed = &types.ParsedSchedule{}
	}

	rep := &report{errors: make([]types.Finding, 0), warnings: make([]types.Finding, 0)}
	summary := types.ImpactSummary{
		RatesByTariff: make(map[types.TariffCode]types.TariffImpact),
		TotalRates:    parsed.TotalRates(),
	}
	newProducts := newNameList()
	existingProducts := newNameList()

	// 1. Company name presence
	if strings.TrimSpace(parsed.Company.Name) == "" {
		rep.addError(types.Finding{
			Kind:    types.KindEmptyName,
			Message: "Company name is empty",
		})
	}

	// 2. Company identity resolution; no match means every product is new
	base := newBaseline(companies, products, rates)
	rec := &reconciler{baseline: base}
	if company, ok := base.companyByName(parsed.Company.Name); ok && strings.TrimSpace(parsed.Company.Name) != "" {
		rec.company = &company
	}

	seen := make(map[string]bool, len(parsed.Products))
	present := make(map[types.TariffCode]bool)

	for _, p := range parsed.Products {
		present[p.Tariff] = true

		// 3. Structural checks
		if strings.TrimSpace(p.Name) == "" {
			rep.addError(types.Finding{
				Kind:    types.KindEmptyField,
				Message: fmt.Sprintf("Product without name in tariff %s", displayTariff(p.Tariff)),
				Tariff:  p.Tariff,
			})
			continue
		}
		if !tariffs.IsValid(p.Tariff) {
			rep.addError(types.Finding{
				Kind:    types.KindInvalidTariff,
				Message: fmt.Sprintf("Product %q has unrecognized tariff %s", p.Name, displayTariff(p.Tariff)),
				Tariff:  p.Tariff,
				Product: p.Name,
			})
		}
		key := identity.ProductKey(p.Tariff, p.Name, p.FeeValue)
		if seen[key] {
			rep.addError(types.Finding{
				Kind:    types.KindDuplicateProduct,
				Message: fmt.Sprintf("Product %q%s appears more than once in tariff %s", p.Name, feeSuffix(p.FeeValue), displayTariff(p.Tariff)),
				Tariff:  p.Tariff,
				Product: p.Name,
			})
		}
		seen[key] = true

		// 4. Identity classification
		var stored *types.Product
		if match, ok := rec.matchProduct(p); ok {
			stored = &match
			existingProducts.add(p.Name)
		} else {
			newProducts.add(p.Name)
		}

		// 5. Rate checks
		if len(p.Rates) == 0 {
			rep.addWarning(types.Finding{
				Kind:    types.KindProductNoRates,
				Message: fmt.Sprintf("Product %q has no rates in tariff %s", p.Name, displayTariff(p.Tariff)),
				Tariff:  p.Tariff,
				Product: p.Name,
			})
			continue
		}
		checkProductRates(rep, rec, stored, p, summary.RatesByTariff)
	}

	// 6. Coverage
	for _, code := range tariffs.All() {
		if present[code] {
			continue
		}
		rep.addWarning(types.Finding{
			Kind:    types.KindEmptySheet,
			Message: fmt.Sprintf("Tariff %s has no products", code),
			Tariff:  code,
		})
	}

	summary.NewProducts = newProducts.names
	summary.ExistingProducts = existingProducts.names

	return &types.ValidationResult{
		Valid:    len(rep.errors) == 0,
		Errors:   rep.errors,
		Warnings: rep.warnings,
		Summary:  summary,
	}
}

// checkProductRates runs the per-rate checks of one product and counts
// new/updated rates for its tariff
func checkProductRates(rep *report, rec *reconciler, stored *types.Product, p types.ParsedProduct, impact map[types.TariffCode]types.TariffImpact) {
	positioned := make([]positionedRate, len(p.Rates))
	counts := impact[p.Tariff]

	for i, rate := range p.Rates {
		row := rate.Row
		if row <= 0 {
			row = i + 1 + headerRows
		}
		positioned[i] = positionedRate{rate: rate, row: row}

		if rate.GrossAmount < 0 {
			rep.addError(types.Finding{
				Kind: types.KindNegative,
				Message: fmt.Sprintf("Negative commission %s for %q in range %s",
					identity.FormatNumber(rate.GrossAmount), p.Name, formatRange(rate.ConsumptionMin, rate.ConsumptionMax)),
				Tariff:  p.Tariff,
				Product: p.Name,
				Row:     row,
			})
		}
		if rate.ConsumptionMin > rate.ConsumptionMax {
			rep.addError(types.Finding{
				Kind: types.KindMinGtMax,
				Message: fmt.Sprintf("Consumption minimum %s is greater than maximum %s for %q",
					identity.FormatNumber(rate.ConsumptionMin), identity.FormatNumber(rate.ConsumptionMax), p.Name),
				Tariff:  p.Tariff,
				Product: p.Name,
				Row:     row,
			})
		}

		if rec.isUpdate(stored, p.Tariff, rate) {
			counts.UpdateCount++
		} else {
			counts.NewCount++
		}
	}
	impact[p.Tariff] = counts

	overlaps, gaps := checkRanges(positioned)
	for _, o := range overlaps {
		rep.addError(types.Finding{
			Kind: types.KindOverlap,
			Message: fmt.Sprintf("Ranges %s and %s overlap for %q",
				formatRange(o.Previous.ConsumptionMin, o.Previous.ConsumptionMax),
				formatRange(o.Next.ConsumptionMin, o.Next.ConsumptionMax), p.Name),
			Tariff:  p.Tariff,
			Product: p.Name,
			Row:     o.Row,
		})
	}
	for _, g := range gaps {
		rep.addWarning(types.Finding{
			Kind:    types.KindGapInRanges,
			Message: fmt.Sprintf("No range covers consumption %s for %q", formatRange(g.From, g.To), p.Name),
			Tariff:  p.Tariff,
			Product: p.Name,
			Row:     g.Row,
		})
	}
}

func displayTariff(t types.TariffCode) string {
	if t == "" {
		return "(none)"
	}
	return string(t)
}

func feeSuffix(fee *float64) string {
	if fee == nil {
		return ""
	}
	return " (fee " + identity.FormatNumber(*fee) + ")"
}
