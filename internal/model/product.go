package model

import "time"

// Product is a catalog item owned by exactly one supplier account.
// Price is the final sell price. BasePrice, ProfitType, ProfitValue and
// TaxRate are the pricing inputs it was derived from; they are absent on
// items created by an administrator with a direct price.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	BasePrice    *float64  `json:"base_price,omitempty"`
	ProfitType   string    `json:"profit_type,omitempty"`
	ProfitValue  *float64  `json:"profit_value,omitempty"`
	TaxRate      *float64  `json:"tax_rate,omitempty"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	SKU          string    `json:"sku"`
	ImageURL     string    `json:"image_url,omitempty"`
	ImageMime    string    `json:"image_mime,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultTaxRate is applied when a pricing request omits the tax rate.
const DefaultTaxRate = 16.0
