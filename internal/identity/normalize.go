// Package identity resolves companies, products and rates by natural keys
// instead of primary-key joins.
package identity

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// NoFeeSentinel stands for "no fee tier" in composite keys. It must never
// collide with a formatted number: a 0 fee is a distinct tier.
const NoFeeSentinel = "N"

// RemoveDiacritics strips combining marks ("fórmula" -> "formula")
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizeName folds a company or product name for comparison:
// trimmed, inner whitespace collapsed, lowercased
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ParseCommissionModel maps a model label to a commission model. Only
// "formula" (any case, with or without accent) selects the formula model.
func ParseCommissionModel(label string) types.CommissionModel {
	folded := strings.ToLower(RemoveDiacritics(strings.TrimSpace(label)))
	if folded == "formula" {
		return types.CommissionModelFormula
	}
	return types.CommissionModelTable
}

// FormatNumber renders a number the shortest way that round-trips ("101", "0.5")
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FeeKey renders a fee tier for use in composite keys
func FeeKey(fee *float64) string {
	if fee == nil {
		return NoFeeSentinel
	}
	return FormatNumber(*fee)
}

// GroupKey is the exact key the parser groups rows by: tariff|name|fee
func GroupKey(tariff types.TariffCode, name string, fee *float64) string {
	return string(tariff) + "|" + strings.TrimSpace(name) + "|" + FeeKey(fee)
}

// ProductKey is the case-insensitive identity of a product inside one schedule
func ProductKey(tariff types.TariffCode, name string, fee *float64) string {
	return string(tariff) + "|" + NormalizeName(name) + "|" + FeeKey(fee)
}

// StoredProductKey is the identity of a stored product: (companyID, name, fee)
func StoredProductKey(companyID, name string, fee *float64) string {
	return companyID + "|" + NormalizeName(name) + "|" + FeeKey(fee)
}

// RateKey is the identity of a stored rate: (productID, tariff, min, max)
func RateKey(productID string, tariff types.TariffCode, min, max float64) string {
	return productID + "|" + string(tariff) + "|" + FormatNumber(min) + "|" + FormatNumber(max)
}

// Slugify turns a company name into a filesystem-safe key segment
func Slugify(name string) string {
	folded := NormalizeName(RemoveDiacritics(name))
	var b strings.Builder
	lastDash := false
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "unnamed"
	}
	return slug
}
