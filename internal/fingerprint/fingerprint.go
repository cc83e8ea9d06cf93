// Package fingerprint computes a stable content hash of a parsed commission
// schedule, used to key archived uploads and to spot re-uploads of an
// unchanged schedule.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

const (
	// Version is the current version of the fingerprint algorithm
	Version = 1

	prefix = "v1:"
)

// Line is one canonical rate entry fed to the hash
type Line struct {
	Tariff types.TariffCode
	Name   string
	Fee    *float64 // nil ≠ 0
	Min    float64
	Max    float64
	Amount float64
}

func (l Line) canonical() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		l.Tariff,
		identity.NormalizeName(l.Name),
		identity.FeeKey(l.Fee),
		identity.FormatNumber(l.Min),
		identity.FormatNumber(l.Max),
		identity.FormatNumber(l.Amount),
	)
}

// Compute hashes a set of rate lines. The result does not depend on input
// order, treats a nil fee and a 0 fee as different tiers and folds name case.
func Compute(lines []Line) string {
	canonical := make([]string, len(lines))
	for i, l := range lines {
		canonical[i] = l.canonical()
	}
	// Full-line sort keeps duplicates deterministic too
	sort.Strings(canonical)

	var b strings.Builder
	for _, c := range canonical {
		b.WriteString(c)
		b.WriteByte('\n')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return prefix + hex.EncodeToString(sum[:])
}

// Schedule fingerprints a parsed schedule: its company header plus every rate row
func Schedule(s *types.ParsedSchedule) string {
	if s == nil {
		return Compute(nil)
	}
	lines := make([]Line, 0, s.TotalRates()+1)
	// Company header rides along as a pseudo line under an empty tariff
	lines = append(lines, Line{
		Name:   "company:" + s.Company.Name + ":" + string(s.Company.CommissionModel),
		Amount: s.Company.GNEWMarginPct,
	})
	for _, p := range s.Products {
		for _, r := range p.Rates {
			lines = append(lines, Line{
				Tariff: p.Tariff,
				Name:   p.Name,
				Fee:    p.FeeValue,
				Min:    r.ConsumptionMin,
				Max:    r.ConsumptionMax,
				Amount: r.GrossAmount,
			})
		}
	}
	return Compute(lines)
}
