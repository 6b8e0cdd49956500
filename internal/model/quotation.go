package model

import "time"

// Quotation is a supplier-submitted priced proposal attached to an
// order. The uploaded document is embedded as a base64 text blob.
// Quotations are append-only and never updated after creation.
type Quotation struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	SupplierID   string    `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	FileName     string    `json:"file_name"`
	FileData     string    `json:"file_data"`
	Amount       *float64  `json:"amount,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
