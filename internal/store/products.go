package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/storefront/internal/database"
	"github.com/safar/storefront/internal/models"
	"github.com/safar/storefront/internal/money"
)

const productColumns = `id, title, category, type, price_minor, original_price_minor, currency,
		rating, reviews, description, image_path, bg_path, features, specifications,
		is_featured, cover_image_path, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	p := &models.Product{}
	var coverImagePath sql.NullString
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&p.Type,
		&p.PriceMinor,
		&p.OriginalPriceMinor,
		&p.Currency,
		&p.Rating,
		&p.Reviews,
		&p.Description,
		&p.ImagePath,
		&p.BgPath,
		&p.Features,
		&p.Specifications,
		&p.IsFeatured,
		&coverImagePath,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CoverImagePath = coverImagePath.String
	p.FormatPrices()
	return p, nil
}

// ListProducts returns the whole catalog, newest first, with the JSON columns
// parsed back into structured form and display prices derived.
func ListProducts(ctx context.Context, db *sql.DB) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

func CreateProduct(ctx context.Context, db *sql.DB, p *models.Product) (*models.Product, error) {
	if p.Currency == "" {
		p.Currency = money.DefaultCurrency
	}

	query := `
		INSERT INTO products (id, title, category, type, price_minor, original_price_minor,
			currency, rating, reviews, description, image_path, bg_path, features,
			specifications, is_featured, cover_image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING ` + productColumns

	created, err := scanProduct(db.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Category, p.Type, p.PriceMinor, p.OriginalPriceMinor,
		p.Currency, p.Rating, p.Reviews, p.Description, p.ImagePath, p.BgPath,
		p.Features, p.Specifications, p.IsFeatured, nullable(p.CoverImagePath)))
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return created, nil
}

// UpsertProduct inserts or fully refreshes a catalog entry by id. Used by the
// bulk seed, which must be rerunnable.
func UpsertProduct(ctx context.Context, db *sql.DB, p *models.Product) (*models.Product, error) {
	if p.Currency == "" {
		p.Currency = money.DefaultCurrency
	}

	query := `
		INSERT INTO products (id, title, category, type, price_minor, original_price_minor,
			currency, rating, reviews, description, image_path, bg_path, features,
			specifications, is_featured, cover_image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			type = EXCLUDED.type,
			price_minor = EXCLUDED.price_minor,
			original_price_minor = EXCLUDED.original_price_minor,
			currency = EXCLUDED.currency,
			rating = EXCLUDED.rating,
			reviews = EXCLUDED.reviews,
			description = EXCLUDED.description,
			image_path = EXCLUDED.image_path,
			bg_path = EXCLUDED.bg_path,
			features = EXCLUDED.features,
			specifications = EXCLUDED.specifications,
			is_featured = EXCLUDED.is_featured,
			cover_image_path = EXCLUDED.cover_image_path,
			updated_at = NOW()
		RETURNING ` + productColumns

	upserted, err := scanProduct(db.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Category, p.Type, p.PriceMinor, p.OriginalPriceMinor,
		p.Currency, p.Rating, p.Reviews, p.Description, p.ImagePath, p.BgPath,
		p.Features, p.Specifications, p.IsFeatured, nullable(p.CoverImagePath)))
	if err != nil {
		return nil, fmt.Errorf("upsert product: %w", err)
	}

	return upserted, nil
}

// UpdateProduct replaces every mutable field of the product with the given id.
func UpdateProduct(ctx context.Context, db *sql.DB, id string, p *models.Product) (*models.Product, error) {
	if p.Currency == "" {
		p.Currency = money.DefaultCurrency
	}

	query := `
		UPDATE products
		SET title = $1, category = $2, type = $3, price_minor = $4, original_price_minor = $5,
			currency = $6, rating = $7, reviews = $8, description = $9, image_path = $10,
			bg_path = $11, features = $12, specifications = $13, is_featured = $14,
			cover_image_path = $15, updated_at = NOW()
		WHERE id = $16
		RETURNING ` + productColumns

	updated, err := scanProduct(db.QueryRowContext(ctx, query,
		p.Title, p.Category, p.Type, p.PriceMinor, p.OriginalPriceMinor,
		p.Currency, p.Rating, p.Reviews, p.Description, p.ImagePath, p.BgPath,
		p.Features, p.Specifications, p.IsFeatured, nullable(p.CoverImagePath), id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return updated, nil
}

// DeleteProduct removes the product if present. Deleting an id that does not
// exist succeeds silently, so the operation is idempotent.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
