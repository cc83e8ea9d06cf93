package xlsx

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Every cell is read untyped; these are the only coercions into the typed model.

var currencyRe = regexp.MustCompile(`[€$£\s\x{00A0}]`)

// cell returns the raw cell at idx, or "" past the end of a short row
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// toText normalizes a cell to trimmed text
func toText(value string) string {
	return strings.TrimSpace(value)
}

// toNumber parses a cell as a number. Handles raw values ("1234.5") and
// localized text ("1.234,50", "1,234.50", "12,5 €"). Blank is not a number.
func toNumber(value string) (float64, bool) {
	cleaned := currencyRe.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0, false
	}

	// Raw numeric cells (including exponent notation) parse directly
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	}

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")

	if lastComma > lastDot {
		// European format: 1.234,56 -> comma is decimal
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	} else if lastDot > lastComma {
		// US format: 1,234.56 -> just remove commas
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// round6 trims float noise introduced by percentage conversion
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
