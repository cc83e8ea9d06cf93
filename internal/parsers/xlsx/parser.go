package xlsx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/tariffs"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

var (
	// ErrEmptyDocument is returned when there is no workbook to read
	ErrEmptyDocument = errors.New("empty schedule document")
	// ErrInvalidDocument is returned when the content is not a readable workbook
	ErrInvalidDocument = errors.New("invalid schedule document")
)

// Stats describes what the parser read and what it dropped
type Stats struct {
	TariffSheets     []types.TariffCode `json:"tariffSheets"`
	SkippedSheets    []string           `json:"skippedSheets,omitempty"`
	IgnoredSheets    []string           `json:"ignoredSheets,omitempty"`
	TotalRows        int                `json:"totalRows"`
	AcceptedRows     int                `json:"acceptedRows"`
	DroppedRows      int                `json:"droppedRows"`
	DegradedMetadata bool               `json:"degradedMetadata"`
}

// Result is a parsed schedule plus parser statistics
type Result struct {
	Schedule *types.ParsedSchedule `json:"schedule"`
	Stats    Stats                 `json:"stats"`
}

// Parse parses a commission schedule workbook.
// Malformed rows and unknown sheets are dropped, never reported as errors;
// only an empty or unreadable document fails.
func Parse(content []byte) (*types.ParsedSchedule, error) {
	result, err := ParseWithStats(content)
	if err != nil {
		return nil, err
	}
	return result.Schedule, nil
}

// ParseWithStats parses a schedule workbook and reports parser statistics
func ParseWithStats(content []byte) (*Result, error) {
	if len(content) == 0 {
		return nil, ErrEmptyDocument
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer f.Close()

	return ParseWorkbook(f)
}

// ParseWorkbook parses an already opened workbook
func ParseWorkbook(f *excelize.File) (*Result, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrEmptyDocument
	}

	result := &Result{
		Schedule: &types.ParsedSchedule{Products: make([]types.ParsedProduct, 0)},
		Stats:    Stats{TariffSheets: make([]types.TariffCode, 0)},
	}

	configSheet := ""
	for _, name := range sheetList {
		if strings.EqualFold(strings.TrimSpace(name), ConfigSheetName) {
			configSheet = name
			break
		}
	}

	groups := newProductGroups()
	firstTariffSheet := ""

	for _, name := range sheetList {
		if name == configSheet {
			continue
		}
		tariff, ok := tariffs.FromSheetName(name)
		if !ok {
			log.Debug().Str("sheet", name).Msg("ignoring sheet with unrecognized tariff name")
			result.Stats.IgnoredSheets = append(result.Stats.IgnoredSheets, name)
			continue
		}
		if firstTariffSheet == "" {
			firstTariffSheet = name
		}

		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			log.Debug().Err(err).Str("sheet", name).Msg("skipping unreadable tariff sheet")
			result.Stats.SkippedSheets = append(result.Stats.SkippedSheets, name)
			continue
		}
		if len(rows) <= tariffFirstDataRow || len(rows[tariffHeaderRow]) < minHeaderColumns {
			log.Debug().
				Str("sheet", name).
				Int("rows", len(rows)).
				Msg("skipping tariff sheet without data rows")
			result.Stats.SkippedSheets = append(result.Stats.SkippedSheets, name)
			continue
		}

		result.Stats.TariffSheets = append(result.Stats.TariffSheets, tariff)
		parseTariffRows(tariff, rows, groups, &result.Stats)
	}

	if configSheet != "" {
		result.Schedule.Company = readConfigSheet(f, configSheet)
	} else {
		fallback := firstTariffSheet
		if fallback == "" {
			fallback = sheetList[0]
		}
		result.Schedule.Company = readFallbackMetadata(f, fallback)
		result.Stats.DegradedMetadata = true
	}

	result.Schedule.Products = groups.products()
	return result, nil
}

// parseTariffRows accepts candidate rows into product groups
func parseTariffRows(tariff types.TariffCode, rows [][]string, groups *productGroups, stats *Stats) {
	for i := tariffFirstDataRow; i < len(rows); i++ {
		row := rows[i]
		rowNumber := i + 1 // 1-based for user-facing
		stats.TotalRows++

		name := toText(cell(row, colProduct))
		minValue, okMin := toNumber(cell(row, colMin))
		maxValue, okMax := toNumber(cell(row, colMax))
		amount, okAmount := toNumber(cell(row, colAmount))

		if name == "" || !okMin || !okMax || !okAmount {
			if !isEmptyRow(row) {
				log.Debug().
					Str("tariff", string(tariff)).
					Int("row", rowNumber).
					Strs("cells", row).
					Msg("dropping unparseable rate row")
			}
			stats.DroppedRows++
			continue
		}

		var feeValue *float64
		var feeLabel *string
		if feeText := toText(cell(row, colFee)); feeText != "" {
			feeLabel = &feeText
			if v, ok := toNumber(feeText); ok {
				feeValue = &v
			}
		}

		groups.add(tariff, name, feeValue, feeLabel, types.RateRow{
			ConsumptionMin: minValue,
			ConsumptionMax: maxValue,
			GrossAmount:    amount,
			Row:            rowNumber,
		})
		stats.AcceptedRows++
	}
}

// readConfigSheet reads [name, model, margin] from the second row of the CONFIG sheet
func readConfigSheet(f *excelize.File, sheet string) types.CompanyConfig {
	cfg := types.CompanyConfig{CommissionModel: types.CommissionModelTable}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		log.Debug().Err(err).Str("sheet", sheet).Msg("unreadable config sheet")
		return cfg
	}
	if len(rows) <= configDataRow {
		return cfg
	}

	row := rows[configDataRow]
	cfg.Name = toText(cell(row, configColName))
	cfg.CommissionModel = identity.ParseCommissionModel(cell(row, configColModel))
	if margin, ok := toNumber(cell(row, configColMargin)); ok {
		cfg.GNEWMarginPct = round6(margin * 100)
	}
	return cfg
}

// readFallbackMetadata reads only the company name from the title cell of a data sheet
func readFallbackMetadata(f *excelize.File, sheet string) types.CompanyConfig {
	cfg := types.CompanyConfig{CommissionModel: types.CommissionModelTable}

	cellName, _ := excelize.CoordinatesToCellName(colProduct+1, tariffTitleRow+1)
	value, err := f.GetCellValue(sheet, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		log.Debug().Err(err).Str("sheet", sheet).Msg("no fallback company metadata")
		return cfg
	}
	cfg.Name = toText(value)
	log.Debug().Str("sheet", sheet).Str("company", cfg.Name).Msg("CONFIG sheet missing, using fallback metadata")
	return cfg
}

// isEmptyRow checks if a row is empty
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// productGroups accumulates rate rows per tariff|name|fee in first-seen order
type productGroups struct {
	index map[string]int
	list  []types.ParsedProduct
}

func newProductGroups() *productGroups {
	return &productGroups{index: make(map[string]int)}
}

func (g *productGroups) add(tariff types.TariffCode, name string, fee *float64, label *string, rate types.RateRow) {
	key := identity.GroupKey(tariff, name, fee)
	idx, ok := g.index[key]
	if !ok {
		idx = len(g.list)
		g.index[key] = idx
		g.list = append(g.list, types.ParsedProduct{
			Name:     name,
			FeeValue: fee,
			FeeLabel: label,
			Tariff:   tariff,
		})
	}
	g.list[idx].Rates = append(g.list[idx].Rates, rate)
}

// products returns the groups that accumulated at least one rate
func (g *productGroups) products() []types.ParsedProduct {
	out := make([]types.ParsedProduct, 0, len(g.list))
	for _, p := range g.list {
		if len(p.Rates) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}
