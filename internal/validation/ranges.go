package validation

import (
	"fmt"
	"sort"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// positionedRate is a rate row with the sheet row it is reported against
type positionedRate struct {
	rate types.RateRow
	row  int
}

// Overlap is a collision between two consecutive sorted ranges
type Overlap struct {
	Previous types.RateRow
	Next     types.RateRow
	Row      int
}

// Gap is a consumption span no range covers, between two consecutive sorted ranges
type Gap struct {
	From float64
	To   float64
	Row  int
}

// checkRanges sorts a product's ranges by min and reports adjacent overlaps and gaps.
// Ranges are inclusive on both ends: [1,100] and [100,200] collide,
// [1,100] and [101,200] are contiguous.
func checkRanges(rates []positionedRate) ([]Overlap, []Gap) {
	sorted := make([]positionedRate, len(rates))
	copy(sorted, rates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].rate.ConsumptionMin != sorted[j].rate.ConsumptionMin {
			return sorted[i].rate.ConsumptionMin < sorted[j].rate.ConsumptionMin
		}
		return sorted[i].rate.ConsumptionMax < sorted[j].rate.ConsumptionMax
	})

	var overlaps []Overlap
	var gaps []Gap
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		switch {
		case next.rate.ConsumptionMin <= prev.rate.ConsumptionMax:
			overlaps = append(overlaps, Overlap{Previous: prev.rate, Next: next.rate, Row: next.row})
		case next.rate.ConsumptionMin > prev.rate.ConsumptionMax+1:
			gaps = append(gaps, Gap{
				From: prev.rate.ConsumptionMax + 1,
				To:   next.rate.ConsumptionMin - 1,
				Row:  next.row,
			})
		}
	}
	return overlaps, gaps
}

func formatRange(min, max float64) string {
	return fmt.Sprintf("%s-%s", identity.FormatNumber(min), identity.FormatNumber(max))
}
