package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

type testSheet struct {
	name string
	rows [][]interface{}
}

// buildWorkbook renders sheets in order into xlsx bytes
func buildWorkbook(t *testing.T, sheets ...testSheet) []byte {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, wb.SetSheetName("Sheet1", s.name))
		} else {
			_, err := wb.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cellName, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, wb.SetSheetRow(s.name, cellName, &values))
		}
	}

	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func configSheet(name, model string, margin interface{}) testSheet {
	return testSheet{
		name: "CONFIG",
		rows: [][]interface{}{
			{"Empresa", "Modelo", "Margen GNEW"},
			{name, model, margin},
		},
	}
}

func tariffSheet(name string, data ...[]interface{}) testSheet {
	rows := [][]interface{}{
		{"Acme", name},
		{"Producto", "Fee", "Desde", "Hasta", "Comisión"},
	}
	rows = append(rows, data...)
	return testSheet{name: name, rows: rows}
}

func TestParseConfigSheet(t *testing.T) {
	tests := []struct {
		name          string
		model         string
		margin        interface{}
		expectedModel types.CommissionModel
		expectedPct   float64
	}{
		{"table model", "table", 0.15, types.CommissionModelTable, 15},
		{"formula lowercase", "formula", 0.2, types.CommissionModelFormula, 20},
		{"formula accented", "Fórmula", 0.1, types.CommissionModelFormula, 10},
		{"unknown label", "tabla fija", 0.05, types.CommissionModelTable, 5},
		{"text margin", "table", "0,15", types.CommissionModelTable, 15},
		{"missing margin", "table", "", types.CommissionModelTable, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := buildWorkbook(t,
				configSheet("Acme Energía", tt.model, tt.margin),
				tariffSheet("2.0TD", []interface{}{"Basic", "", 1, 5000, 10}),
			)

			schedule, err := Parse(content)
			require.NoError(t, err)
			assert.Equal(t, "Acme Energía", schedule.Company.Name)
			assert.Equal(t, tt.expectedModel, schedule.Company.CommissionModel)
			assert.InDelta(t, tt.expectedPct, schedule.Company.GNEWMarginPct, 1e-9)
		})
	}
}

func TestParseConfigSheetCaseInsensitive(t *testing.T) {
	cfg := configSheet("Acme", "table", 0.1)
	cfg.name = "config"
	content := buildWorkbook(t, tariffSheet("2.0TD", []interface{}{"Basic", "", 1, 100, 5}), cfg)

	result, err := ParseWithStats(content)
	require.NoError(t, err)
	assert.Equal(t, "Acme", result.Schedule.Company.Name)
	assert.False(t, result.Stats.DegradedMetadata)
	assert.Empty(t, result.Stats.IgnoredSheets)
}

func TestParseFallbackMetadata(t *testing.T) {
	content := buildWorkbook(t,
		testSheet{name: "Notas", rows: [][]interface{}{{"ignored"}}},
		tariffSheet("3.0TD", []interface{}{"Basic", "", 1, 100, 5}),
	)

	result, err := ParseWithStats(content)
	require.NoError(t, err)
	assert.True(t, result.Stats.DegradedMetadata)
	assert.Equal(t, "Acme", result.Schedule.Company.Name)
	assert.Equal(t, types.CommissionModelTable, result.Schedule.Company.CommissionModel)
	assert.Equal(t, 0.0, result.Schedule.Company.GNEWMarginPct)
	assert.Equal(t, []string{"Notas"}, result.Stats.IgnoredSheets)
}

func TestParseGroupsRowsIntoProducts(t *testing.T) {
	content := buildWorkbook(t,
		configSheet("Acme", "table", 0.15),
		tariffSheet("2.0TD",
			[]interface{}{"Basic", "", 1, 5000, 10},
			[]interface{}{"Premium", 5, 1, 5000, 20},
			[]interface{}{"Basic", "", 5001, 10000, 8},
			[]interface{}{"Basic", 0, 1, 5000, 11},
			[]interface{}{" Premium ", "5", 5001, 10000, 18},
		),
		tariffSheet("3.0TD",
			[]interface{}{"Basic", "", 1, 100000, 40},
		),
	)

	schedule, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, schedule.Products, 4)

	basic := schedule.Products[0]
	assert.Equal(t, "Basic", basic.Name)
	assert.Equal(t, types.TariffCode("2.0TD"), basic.Tariff)
	assert.Nil(t, basic.FeeValue)
	assert.Nil(t, basic.FeeLabel)
	require.Len(t, basic.Rates, 2)
	assert.Equal(t, types.RateRow{ConsumptionMin: 1, ConsumptionMax: 5000, GrossAmount: 10, Row: 3}, basic.Rates[0])
	assert.Equal(t, types.RateRow{ConsumptionMin: 5001, ConsumptionMax: 10000, GrossAmount: 8, Row: 5}, basic.Rates[1])

	premium := schedule.Products[1]
	assert.Equal(t, "Premium", premium.Name)
	require.NotNil(t, premium.FeeValue)
	assert.Equal(t, 5.0, *premium.FeeValue)
	assert.Len(t, premium.Rates, 2, "numeric and text fee cells with the same value share a tier")

	zeroFee := schedule.Products[2]
	assert.Equal(t, "Basic", zeroFee.Name)
	require.NotNil(t, zeroFee.FeeValue, "a 0 fee is a tier of its own, not 'no fee'")
	assert.Equal(t, 0.0, *zeroFee.FeeValue)
	assert.Len(t, zeroFee.Rates, 1)

	assert.Equal(t, types.TariffCode("3.0TD"), schedule.Products[3].Tariff)
	assert.Equal(t, 6, schedule.TotalRates())
}

func TestParseDropsMalformedRows(t *testing.T) {
	content := buildWorkbook(t,
		configSheet("Acme", "table", 0.15),
		tariffSheet("2.0TD",
			[]interface{}{"Basic", "", 1, 5000, 10},
			[]interface{}{"", "", 5001, 10000, 8},
			[]interface{}{"   ", "", 5001, 10000, 8},
			[]interface{}{"Basic", "", "abc", 10000, 8},
			[]interface{}{"Basic", "", 5001, "", 8},
			[]interface{}{"Basic", "", 5001, 10000},
			[]interface{}{"Basic", "", "10.001", "20.000", "7,5"},
		),
	)

	result, err := ParseWithStats(content)
	require.NoError(t, err)
	require.Len(t, result.Schedule.Products, 1)

	rates := result.Schedule.Products[0].Rates
	require.Len(t, rates, 2)
	assert.Equal(t, 1.0, rates[0].ConsumptionMin)
	assert.Equal(t, 10.001, rates[1].ConsumptionMin, "a lone dot is read as a decimal separator")
	assert.Equal(t, 7.5, rates[1].GrossAmount)
	assert.Equal(t, 2, result.Stats.AcceptedRows)
	assert.Equal(t, 4, result.Stats.DroppedRows)
}

func TestParseKeepsNegativeAndInvertedRows(t *testing.T) {
	content := buildWorkbook(t,
		configSheet("Acme", "table", 0.15),
		tariffSheet("2.0TD",
			[]interface{}{"Basic", "", 500, 100, -5},
		),
	)

	schedule, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, schedule.Products, 1)
	assert.Equal(t, -5.0, schedule.Products[0].Rates[0].GrossAmount)
}

func TestParseSkipsHeaderOnlyAndUnknownSheets(t *testing.T) {
	content := buildWorkbook(t,
		configSheet("Acme", "table", 0.15),
		tariffSheet("2.0TD"),
		testSheet{name: "3.0TD", rows: [][]interface{}{
			{"Acme", "3.0TD"},
			{"Producto", "Fee"},
			{"Basic", "", 1, 100, 5},
		}},
		tariffSheet("Resumen", []interface{}{"Basic", "", 1, 100, 5}),
		tariffSheet("6.1td", []interface{}{"Basic", "", 1, 100, 5}),
	)

	result, err := ParseWithStats(content)
	require.NoError(t, err)
	require.Len(t, result.Schedule.Products, 1)
	assert.Equal(t, types.TariffCode("6.1TD"), result.Schedule.Products[0].Tariff)
	assert.Equal(t, []types.TariffCode{"6.1TD"}, result.Stats.TariffSheets)
	assert.ElementsMatch(t, []string{"2.0TD", "3.0TD"}, result.Stats.SkippedSheets)
	assert.Equal(t, []string{"Resumen"}, result.Stats.IgnoredSheets)
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Parse([]byte("not a workbook"))
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"5000", 5000, true},
		{"0.15", 0.15, true},
		{"1.5E3", 1500, true},
		{"-5", -5, true},
		{"1.234,56", 1234.56, true},
		{"1,234.56", 1234.56, true},
		{"12,5 €", 12.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := toNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, v, 1e-9)
			}
		})
	}
}
