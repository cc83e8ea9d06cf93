package xlsx

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/tariffs"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// sheetRow is one rendered rate line of a tariff sheet
type sheetRow struct {
	product string
	fee     *float64
	label   *string
	rate    types.RateRow
}

// Render writes a company's stored products and rates as a schedule workbook.
// Rates whose product is unknown or whose tariff is not recognized have no
// sheet to go to and are left out.
func Render(company types.Company, products []types.Product, rates []types.Rate) ([]byte, error) {
	byID := make(map[string]types.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	rowsByTariff := make(map[types.TariffCode][]sheetRow)
	for _, r := range rates {
		p, ok := byID[r.ProductID]
		if !ok {
			log.Debug().Str("rate", r.ID).Str("product", r.ProductID).Msg("rate references unknown product, not rendered")
			continue
		}
		tariff, ok := tariffs.FromSheetName(string(r.Tariff))
		if !ok {
			log.Debug().Str("rate", r.ID).Str("tariff", string(r.Tariff)).Msg("rate has unrecognized tariff, not rendered")
			continue
		}
		rowsByTariff[tariff] = append(rowsByTariff[tariff], sheetRow{
			product: p.Name,
			fee:     p.FeeValue,
			label:   p.FeeLabel,
			rate: types.RateRow{
				ConsumptionMin: r.ConsumptionMin,
				ConsumptionMax: r.ConsumptionMax,
				GrossAmount:    r.GrossAmount,
			},
		})
	}

	cfg := types.CompanyConfig{
		Name:            company.Name,
		CommissionModel: company.CommissionModel,
		GNEWMarginPct:   company.GNEWMarginPct,
	}
	return renderWorkbook(cfg, rowsByTariff)
}

// RenderSkeleton writes an empty schedule: the CONFIG sheet and one
// header-only sheet per tariff, ready to be completed by hand
func RenderSkeleton(companyName string, model types.CommissionModel) ([]byte, error) {
	if model == "" {
		model = types.CommissionModelTable
	}
	cfg := types.CompanyConfig{Name: companyName, CommissionModel: model}
	return renderWorkbook(cfg, nil)
}

// RenderSchedule writes a parsed schedule back out in the same shape
func RenderSchedule(schedule *types.ParsedSchedule) ([]byte, error) {
	rowsByTariff := make(map[types.TariffCode][]sheetRow)
	for _, p := range schedule.Products {
		for _, r := range p.Rates {
			rowsByTariff[p.Tariff] = append(rowsByTariff[p.Tariff], sheetRow{
				product: p.Name,
				fee:     p.FeeValue,
				label:   p.FeeLabel,
				rate:    r,
			})
		}
	}
	return renderWorkbook(schedule.Company, rowsByTariff)
}

func renderWorkbook(cfg types.CompanyConfig, rowsByTariff map[types.TariffCode][]sheetRow) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", ConfigSheetName); err != nil {
		return nil, fmt.Errorf("failed to create config sheet: %w", err)
	}
	if err := writeConfigSheet(wb, cfg); err != nil {
		return nil, err
	}

	for _, tariff := range tariffs.All() {
		if _, err := wb.NewSheet(string(tariff)); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", tariff, err)
		}
		if err := writeTariffSheet(wb, cfg.Name, tariff, rowsByTariff[tariff]); err != nil {
			return nil, err
		}
	}
	wb.SetActiveSheet(0)

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeConfigSheet(wb *excelize.File, cfg types.CompanyConfig) error {
	header := configHeader
	if err := wb.SetSheetRow(ConfigSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}

	model := cfg.CommissionModel
	if model == "" {
		model = types.CommissionModelTable
	}
	values := []interface{}{cfg.Name, string(model), round6(cfg.GNEWMarginPct / 100)}
	if err := wb.SetSheetRow(ConfigSheetName, "A2", &values); err != nil {
		return fmt.Errorf("failed to write config row: %w", err)
	}
	return wb.SetColWidth(ConfigSheetName, "A", "C", 24)
}

func writeTariffSheet(wb *excelize.File, companyName string, tariff types.TariffCode, rows []sheetRow) error {
	sheet := string(tariff)

	title := []interface{}{companyName, sheet}
	if err := wb.SetSheetRow(sheet, "A1", &title); err != nil {
		return fmt.Errorf("failed to write %s title: %w", sheet, err)
	}
	header := tariffHeader
	if err := wb.SetSheetRow(sheet, "A2", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	sortSheetRows(rows)
	for i, r := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, tariffFirstDataRow+i+1)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.product,
			feeCell(r.fee, r.label),
			r.rate.ConsumptionMin,
			r.rate.ConsumptionMax,
			r.rate.GrossAmount,
		}
		if err := wb.SetSheetRow(sheet, cellName, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	if err := wb.SetColWidth(sheet, "A", "A", 32); err != nil {
		return err
	}
	return wb.SetColWidth(sheet, "B", "E", 20)
}

// feeCell renders the fee tier: the number when known, else the label, else blank
func feeCell(fee *float64, label *string) interface{} {
	if fee != nil {
		return *fee
	}
	if label != nil {
		return *label
	}
	return ""
}

// sortSheetRows orders by product name, then consumption start, for diff-friendly output
func sortSheetRows(rows []sheetRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.product != b.product {
			return a.product < b.product
		}
		if a.rate.ConsumptionMin != b.rate.ConsumptionMin {
			return a.rate.ConsumptionMin < b.rate.ConsumptionMin
		}
		if fa, fb := identity.FeeKey(a.fee), identity.FeeKey(b.fee); fa != fb {
			return fa < fb
		}
		return a.rate.ConsumptionMax < b.rate.ConsumptionMax
	})
}
