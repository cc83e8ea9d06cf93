package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// ErrNoCompany is returned when no stored company matches a name
var ErrNoCompany = errors.New("company not found")

// FindCompanyByName returns the oldest company whose folded name matches
func FindCompanyByName(ctx context.Context, db DBTX, name string) (*types.Company, error) {
	query := `
		SELECT id, name, commission_model, gnew_margin_pct
		FROM companies
		WHERE regexp_replace(lower(btrim(name)), '\s+', ' ', 'g') = $1
		ORDER BY created_at, id
		LIMIT 1
	`
	var c types.Company
	var model string
	err := db.QueryRow(ctx, query, identity.NormalizeName(name)).Scan(&c.ID, &c.Name, &model, &c.GNEWMarginPct)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoCompany
	}
	if err != nil {
		return nil, fmt.Errorf("error querying company: %w", err)
	}
	c.CommissionModel = types.CommissionModel(model)
	return &c, nil
}

// ListProductsByCompany returns a company's products in insertion order
func ListProductsByCompany(ctx context.Context, db DBTX, companyID string) ([]types.Product, error) {
	query := `
		SELECT id, company_id, name, fee_value, fee_label
		FROM products
		WHERE company_id = $1
		ORDER BY created_at, id
	`
	rows, err := db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	products := make([]types.Product, 0)
	for rows.Next() {
		var p types.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.FeeValue, &p.FeeLabel); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// ListRatesByCompany returns every rate of a company's products
func ListRatesByCompany(ctx context.Context, db DBTX, companyID string) ([]types.Rate, error) {
	query := `
		SELECT r.id, r.product_id, r.tariff, r.consumption_min, r.consumption_max, r.gross_amount
		FROM rates r
		JOIN products p ON p.id = r.product_id
		WHERE p.company_id = $1
		ORDER BY r.created_at, r.id
	`
	rows, err := db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying rates: %w", err)
	}
	defer rows.Close()

	rates := make([]types.Rate, 0)
	for rows.Next() {
		var r types.Rate
		var tariff string
		if err := rows.Scan(&r.ID, &r.ProductID, &tariff, &r.ConsumptionMin, &r.ConsumptionMax, &r.GrossAmount); err != nil {
			return nil, fmt.Errorf("error scanning rate: %w", err)
		}
		r.Tariff = types.TariffCode(tariff)
		rates = append(rates, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates: %w", err)
	}
	return rates, nil
}

// InsertCompany stores a company row
func InsertCompany(ctx context.Context, db DBTX, c types.Company) error {
	model := c.CommissionModel
	if model == "" {
		model = types.CommissionModelTable
	}
	_, err := db.Exec(ctx,
		`INSERT INTO companies (id, name, commission_model, gnew_margin_pct) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, string(model), c.GNEWMarginPct)
	if err != nil {
		return fmt.Errorf("error inserting company %s: %w", c.Name, err)
	}
	return nil
}

// InsertProduct stores a product row
func InsertProduct(ctx context.Context, db DBTX, p types.Product) error {
	_, err := db.Exec(ctx,
		`INSERT INTO products (id, company_id, name, fee_value, fee_label) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.CompanyID, p.Name, p.FeeValue, p.FeeLabel)
	if err != nil {
		return fmt.Errorf("error inserting product %s: %w", p.Name, err)
	}
	return nil
}

// InsertRate stores a rate row
func InsertRate(ctx context.Context, db DBTX, r types.Rate) error {
	_, err := db.Exec(ctx,
		`INSERT INTO rates (id, product_id, tariff, consumption_min, consumption_max, gross_amount) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.ProductID, string(r.Tariff), r.ConsumptionMin, r.ConsumptionMax, r.GrossAmount)
	if err != nil {
		return fmt.Errorf("error inserting rate %s: %w", r.ID, err)
	}
	return nil
}
