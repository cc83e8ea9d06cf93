package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

func TestRenderResultCapsFindings(t *testing.T) {
	result := &types.ValidationResult{
		Valid: false,
		Summary: types.ImpactSummary{
			TotalRates:    3,
			NewProducts:   []string{"Basic"},
			RatesByTariff: map[types.TariffCode]types.TariffImpact{"2.0TD": {NewCount: 3}},
		},
	}
	for i := 0; i < maxFindingsShown+5; i++ {
		result.Errors = append(result.Errors, types.Finding{
			Kind:    types.KindNegative,
			Message: fmt.Sprintf("finding %d", i),
			Tariff:  "2.0TD",
			Row:     i + 3,
		})
	}

	var buf bytes.Buffer
	renderResult(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "rejected with 25 errors")
	assert.Contains(t, out, "finding 19")
	assert.NotContains(t, out, "finding 20")
	assert.Contains(t, out, "and 5 more")
	assert.Contains(t, out, "3 new, 0 updated")
}

func TestRenderResultValid(t *testing.T) {
	var buf bytes.Buffer
	renderResult(&buf, &types.ValidationResult{Valid: true})

	out := buf.String()
	assert.Contains(t, out, "Schedule is valid")
	assert.False(t, strings.Contains(out, "Errors ("))
}

func TestCheckOutputFormat(t *testing.T) {
	assert.NoError(t, checkOutputFormat("JSON"))
	assert.NoError(t, checkOutputFormat("table"))
	assert.Error(t, checkOutputFormat("yaml"))
}
