package types

// FindingKind identifies the rule that produced a finding
type FindingKind string

// Blocking error kinds
const (
	KindEmptyName        FindingKind = "empty_name"
	KindEmptyField       FindingKind = "empty_field"
	KindInvalidTariff    FindingKind = "invalid_tariff"
	KindDuplicateProduct FindingKind = "duplicate_product"
	KindNegative         FindingKind = "negative"
	KindMinGtMax         FindingKind = "min_gt_max"
	KindOverlap          FindingKind = "overlap"
)

// Non-blocking warning kinds
const (
	KindProductNoRates FindingKind = "product_no_rates"
	KindGapInRanges    FindingKind = "gap_in_ranges"
	KindEmptySheet     FindingKind = "empty_sheet"
)

// Severity represents whether a finding blocks a commit
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding represents a single validation error or warning
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Message string      `json:"message"`
	Tariff  TariffCode  `json:"tariff,omitempty"`
	Product string      `json:"product,omitempty"`
	Row     int         `json:"row,omitempty"`
}

// TariffImpact counts the rates of one tariff that are new or replace a stored rate
type TariffImpact struct {
	NewCount    int `json:"newCount"`
	UpdateCount int `json:"updateCount"`
}

// ImpactSummary describes what committing a schedule would change
type ImpactSummary struct {
	NewProducts      []string                    `json:"newProducts"`
	ExistingProducts []string                    `json:"existingProducts"`
	RatesByTariff    map[TariffCode]TariffImpact `json:"ratesByTariff"`
	TotalRates       int                         `json:"totalRates"`
}

// ValidationResult represents the complete report of a validation run
type ValidationResult struct {
	Valid    bool          `json:"valid"`
	Errors   []Finding     `json:"errors"`
	Warnings []Finding     `json:"warnings"`
	Summary  ImpactSummary `json:"summary"`
}
