package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

const productColumns = `id, name, description, category, price, base_price, profit_type,
	profit_value, tax_rate, supplier_id, supplier_name, sku, image_url, image_mime,
	created_at, updated_at`

// CreateProduct inserts a catalog item. The price must already be
// derived (or supplied directly on the admin path); pricing inputs may
// be nil for admin-authored items.
func CreateProduct(ctx context.Context, db *sql.DB, p *model.Product) (*model.Product, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, category, price, base_price,
		     profit_type, profit_value, tax_rate, supplier_id, supplier_name, sku, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Name, p.Description, p.Category, p.Price, p.BasePrice,
		nullable(p.ProfitType), p.ProfitValue, p.TaxRate,
		p.SupplierID, p.SupplierName, p.SKU, nullable(p.ImageURL),
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a product by id.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id,
	)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// ListProducts returns products, optionally filtered by category and/or
// supplier.
func ListProducts(ctx context.Context, db *sql.DB, category, supplierID string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any

	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if supplierID != "" {
		query += ` AND supplier_id = ?`
		args = append(args, supplierID)
	}

	query += ` ORDER BY name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// UpdateProduct replaces a product's fields and recomputed price.
func UpdateProduct(ctx context.Context, db *sql.DB, p *model.Product) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, category = ?, price = ?,
		     base_price = ?, profit_type = ?, profit_value = ?, tax_rate = ?,
		     supplier_name = ?, sku = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		p.Name, p.Description, p.Category, p.Price, p.BasePrice,
		nullable(p.ProfitType), p.ProfitValue, p.TaxRate,
		p.SupplierName, p.SKU, nullable(p.ImageURL), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}

// SetProductImage stores normalized image bytes for a product.
func SetProductImage(ctx context.Context, db *sql.DB, id string, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting product image: %w", err)
	}
	return nil
}

// GetProductImage returns a product's image bytes and MIME type.
func GetProductImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM products WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product image: %w", err)
	}
	return image, mime.String, nil
}

func scanProduct(scan func(...any) error) (*model.Product, error) {
	p := &model.Product{}
	var description, category, profitType, sku, imageURL, imageMime sql.NullString
	var basePrice, profitValue, taxRate sql.NullFloat64
	err := scan(&p.ID, &p.Name, &description, &category, &p.Price, &basePrice,
		&profitType, &profitValue, &taxRate, &p.SupplierID, &p.SupplierName,
		&sku, &imageURL, &imageMime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	p.Category = category.String
	p.ProfitType = profitType.String
	p.SKU = sku.String
	p.ImageURL = imageURL.String
	p.ImageMime = imageMime.String
	if basePrice.Valid {
		p.BasePrice = &basePrice.Float64
	}
	if profitValue.Valid {
		p.ProfitValue = &profitValue.Float64
	}
	if taxRate.Valid {
		p.TaxRate = &taxRate.Float64
	}
	return p, nil
}
