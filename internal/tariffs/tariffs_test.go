package tariffs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

func TestFromSheetName(t *testing.T) {
	tests := []struct {
		sheet    string
		expected types.TariffCode
		ok       bool
	}{
		{"2.0TD", Tariff20TD, true},
		{"2.0td", Tariff20TD, true},
		{" 6.4TD ", Tariff64TD, true},
		{"CONFIG", "", false},
		{"Sheet1", "", false},
		{"7.0TD", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.sheet, func(t *testing.T) {
			code, ok := FromSheetName(tt.sheet)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestIsValid(t *testing.T) {
	for _, c := range All() {
		assert.True(t, IsValid(c), "%s should be valid", c)
	}
	assert.False(t, IsValid("2.0td"))
	assert.False(t, IsValid(""))
}
