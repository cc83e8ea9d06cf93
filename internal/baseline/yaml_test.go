package baseline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

const fixtureYAML = `
companies:
  - id: c1
    name: Acme
    commission_model: Fórmula
    gnew_margin_pct: 15
    products:
      - id: p1
        name: Basic
        rates:
          - tariff: 2.0TD
            consumption_min: 1
            consumption_max: 5000
            gross_amount: 10
      - name: Basic
        fee_value: 0
        fee_label: "0"
        rates:
          - tariff: 3.0TD
            consumption_min: 1
            consumption_max: 100000
            gross_amount: 40.5
  - name: Second
`

func TestParseYAML(t *testing.T) {
	store, err := ParseYAML([]byte(fixtureYAML))
	require.NoError(t, err)

	companies, products, rates := store.Len()
	assert.Equal(t, 2, companies)
	assert.Equal(t, 2, products)
	assert.Equal(t, 2, rates)

	ctx := context.Background()
	acme, err := store.FindCompany(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, types.CommissionModelFormula, acme.CommissionModel)
	assert.Equal(t, 15.0, acme.GNEWMarginPct)

	second, err := store.FindCompany(ctx, "Second")
	require.NoError(t, err)
	_, err = uuid.Parse(second.ID)
	assert.NoError(t, err, "missing ids are generated")
	assert.Equal(t, types.CommissionModelTable, second.CommissionModel)

	list, err := store.ListProducts(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Nil(t, list[0].FeeValue)
	require.NotNil(t, list[1].FeeValue)
	assert.Equal(t, 0.0, *list[1].FeeValue, "explicit zero fee survives")

	rs, err := store.ListRates(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "p1", rs[0].ProductID)
	assert.Equal(t, list[1].ID, rs[1].ProductID)
	assert.Equal(t, types.TariffCode("3.0TD"), rs[1].Tariff)
}

func TestParseYAMLRejectsNamelessCompany(t *testing.T) {
	_, err := ParseYAML([]byte("companies:\n  - commission_model: table\n"))
	assert.Error(t, err)
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("companies: [unterminated"))
	assert.Error(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))

	store, err := LoadYAMLFile(path)
	require.NoError(t, err)
	companies, _, _ := store.Len()
	assert.Equal(t, 2, companies)

	_, err = LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
