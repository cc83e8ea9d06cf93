package baseline

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// fixtureFile is the on-disk baseline shape: companies own products, products own rates
type fixtureFile struct {
	Companies []fixtureCompany `yaml:"companies"`
}

type fixtureCompany struct {
	ID              string           `yaml:"id"`
	Name            string           `yaml:"name"`
	CommissionModel string           `yaml:"commission_model"`
	GNEWMarginPct   float64          `yaml:"gnew_margin_pct"`
	Products        []fixtureProduct `yaml:"products"`
}

type fixtureProduct struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	FeeValue *float64      `yaml:"fee_value"`
	FeeLabel *string       `yaml:"fee_label"`
	Rates    []fixtureRate `yaml:"rates"`
}

type fixtureRate struct {
	ID             string  `yaml:"id"`
	Tariff         string  `yaml:"tariff"`
	ConsumptionMin float64 `yaml:"consumption_min"`
	ConsumptionMax float64 `yaml:"consumption_max"`
	GrossAmount    float64 `yaml:"gross_amount"`
}

// ParseYAML builds a MemoryStore from a YAML baseline document.
// Rows without an id get a random UUID.
func ParseYAML(data []byte) (*MemoryStore, error) {
	var doc fixtureFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing baseline yaml: %w", err)
	}

	var companies []types.Company
	var products []types.Product
	var rates []types.Rate

	for ci, fc := range doc.Companies {
		if fc.Name == "" {
			return nil, fmt.Errorf("company %d: name is required", ci+1)
		}
		company := types.Company{
			ID:              idOrNew(fc.ID),
			Name:            fc.Name,
			CommissionModel: identity.ParseCommissionModel(fc.CommissionModel),
			GNEWMarginPct:   fc.GNEWMarginPct,
		}
		companies = append(companies, company)

		for _, fp := range fc.Products {
			product := types.Product{
				ID:        idOrNew(fp.ID),
				CompanyID: company.ID,
				Name:      fp.Name,
				FeeValue:  fp.FeeValue,
				FeeLabel:  fp.FeeLabel,
			}
			products = append(products, product)

			for _, fr := range fp.Rates {
				rates = append(rates, types.Rate{
					ID:             idOrNew(fr.ID),
					ProductID:      product.ID,
					Tariff:         types.TariffCode(fr.Tariff),
					ConsumptionMin: fr.ConsumptionMin,
					ConsumptionMax: fr.ConsumptionMax,
					GrossAmount:    fr.GrossAmount,
				})
			}
		}
	}

	return NewMemoryStore(companies, products, rates), nil
}

// LoadYAMLFile reads a YAML baseline fixture from disk
func LoadYAMLFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading baseline file: %w", err)
	}
	return ParseYAML(data)
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}
