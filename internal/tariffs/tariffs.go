// Package tariffs holds the closed set of recognized access tariff codes.
package tariffs

import (
	"strings"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

const (
	Tariff20TD types.TariffCode = "2.0TD"
	Tariff30TD types.TariffCode = "3.0TD"
	Tariff61TD types.TariffCode = "6.1TD"
	Tariff62TD types.TariffCode = "6.2TD"
	Tariff63TD types.TariffCode = "6.3TD"
	Tariff64TD types.TariffCode = "6.4TD"
)

// All returns the recognized tariff codes in sheet order
func All() []types.TariffCode {
	return []types.TariffCode{
		Tariff20TD,
		Tariff30TD,
		Tariff61TD,
		Tariff62TD,
		Tariff63TD,
		Tariff64TD,
	}
}

// IsValid checks if a tariff code is recognized (exact spelling)
func IsValid(code types.TariffCode) bool {
	for _, c := range All() {
		if c == code {
			return true
		}
	}
	return false
}

// FromSheetName resolves a sheet name to its canonical tariff code.
// Matching ignores case and surrounding spaces.
func FromSheetName(name string) (types.TariffCode, bool) {
	name = strings.TrimSpace(name)
	for _, c := range All() {
		if strings.EqualFold(name, string(c)) {
			return c, true
		}
	}
	return "", false
}
