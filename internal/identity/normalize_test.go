package identity

import (
	"testing"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Fórmula", "Formula"},
		{"Energía Ñ", "Energia N"},
		{"Comisión", "Comision"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := RemoveDiacritics(tt.input)
			if result != tt.expected {
				t.Errorf("RemoveDiacritics(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseCommissionModel(t *testing.T) {
	tests := []struct {
		label    string
		expected types.CommissionModel
	}{
		{"formula", types.CommissionModelFormula},
		{"FORMULA", types.CommissionModelFormula},
		{"Fórmula", types.CommissionModelFormula},
		{" fórmula ", types.CommissionModelFormula},
		{"table", types.CommissionModelTable},
		{"tabla", types.CommissionModelTable},
		{"formulas", types.CommissionModelTable},
		{"", types.CommissionModelTable},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			result := ParseCommissionModel(tt.label)
			if result != tt.expected {
				t.Errorf("ParseCommissionModel(%q) = %q, want %q", tt.label, result, tt.expected)
			}
		})
	}
}

func TestFeeKeyNullVsZero(t *testing.T) {
	zero := 0.0
	if FeeKey(nil) == FeeKey(&zero) {
		t.Errorf("nil and 0 fee produce the same key %q", FeeKey(nil))
	}
	if got := FeeKey(&zero); got != "0" {
		t.Errorf("FeeKey(0) = %q, want %q", got, "0")
	}
}

func TestProductKeyIgnoresCaseAndSpacing(t *testing.T) {
	a := ProductKey("2.0TD", "Plan  Basic", nil)
	b := ProductKey("2.0TD", " plan basic ", nil)
	if a != b {
		t.Errorf("ProductKey mismatch: %q vs %q", a, b)
	}
	if GroupKey("2.0TD", "Plan Basic", nil) == GroupKey("2.0TD", "plan basic", nil) {
		t.Errorf("GroupKey should be case-sensitive")
	}
}

func TestRateKey(t *testing.T) {
	got := RateKey("p1", "3.0TD", 1, 5000)
	if got != "p1|3.0TD|1|5000" {
		t.Errorf("RateKey() = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Acme Energía S.L.", "acme-energia-s-l"},
		{"  ", "unnamed"},
		{"Iberdrola", "iberdrola"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
