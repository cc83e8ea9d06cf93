package types

// Company represents a stored energy-supply partner
type Company struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	CommissionModel CommissionModel `json:"commissionModel" yaml:"commission_model"`
	GNEWMarginPct   float64         `json:"gnewMarginPct" yaml:"gnew_margin_pct"`
}

// Product represents a stored commercial offer. Products are not tariff-scoped;
// their rates are.
type Product struct {
	ID        string   `json:"id" yaml:"id"`
	CompanyID string   `json:"companyId" yaml:"company_id"`
	Name      string   `json:"name" yaml:"name"`
	FeeValue  *float64 `json:"feeValue" yaml:"fee_value"`
	FeeLabel  *string  `json:"feeLabel" yaml:"fee_label"`
}

// Rate represents a stored commission rate row
type Rate struct {
	ID             string     `json:"id" yaml:"id"`
	ProductID      string     `json:"productId" yaml:"product_id"`
	Tariff         TariffCode `json:"tariff" yaml:"tariff"`
	ConsumptionMin float64    `json:"consumptionMin" yaml:"consumption_min"`
	ConsumptionMax float64    `json:"consumptionMax" yaml:"consumption_max"`
	GrossAmount    float64    `json:"grossAmount" yaml:"gross_amount"`
}
