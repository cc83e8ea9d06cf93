package types

// CommissionModel represents how a company's commissions are computed
type CommissionModel string

const (
	CommissionModelTable   CommissionModel = "table"
	CommissionModelFormula CommissionModel = "formula"
)

// TariffCode identifies an energy-access rate class (one sheet per code)
type TariffCode string

// CompanyConfig represents the metadata block of an imported schedule
type CompanyConfig struct {
	Name            string          `json:"name"`
	CommissionModel CommissionModel `json:"commissionModel"`
	// GNEWMarginPct is the margin as a percentage (0.15 in the sheet -> 15)
	GNEWMarginPct float64 `json:"gnewMarginPct"`
}

// RateRow represents a commission amount for annual consumption in [ConsumptionMin, ConsumptionMax]
type RateRow struct {
	ConsumptionMin float64 `json:"consumptionMin"`
	ConsumptionMax float64 `json:"consumptionMax"`
	GrossAmount    float64 `json:"grossAmount"`
	// Row is the 1-based sheet row the rate was read from (0 when not read from a sheet)
	Row int `json:"row,omitempty"`
}

// ParsedProduct represents one product of a schedule, keyed by (Tariff, Name, FeeValue)
type ParsedProduct struct {
	Name     string     `json:"name"`
	FeeValue *float64   `json:"feeValue"`
	FeeLabel *string    `json:"feeLabel"`
	Tariff   TariffCode `json:"tariff"`
	Rates    []RateRow  `json:"rates"`
}

// ParsedSchedule represents a whole imported schedule
type ParsedSchedule struct {
	Company  CompanyConfig   `json:"company"`
	Products []ParsedProduct `json:"products"`
}

// TotalRates returns the number of rate rows across all products
func (s *ParsedSchedule) TotalRates() int {
	total := 0
	for _, p := range s.Products {
		total += len(p.Rates)
	}
	return total
}

// Float64Ptr returns a pointer to the given float64
func Float64Ptr(f float64) *float64 {
	return &f
}

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string {
	return &s
}
