package model

import (
	"fmt"
	"time"
)

// Line kinds. A line is either a snapshot of a catalog product or a
// free-form custom request quoted out-of-band by the supplier.
const (
	LineCatalog = "catalog"
	LineCustom  = "custom"
)

// OrderLine is one position on an order. Exactly one variant applies:
// catalog lines carry ProductID, UnitPrice and SupplierID snapshots;
// custom lines carry only a client-supplied name, description and
// quantity (no price, no product reference).
type OrderLine struct {
	Kind        string  `json:"kind"`
	ProductID   string  `json:"product_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	SupplierID  string  `json:"supplier_id,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// Validate checks the line's variant invariants.
func (l OrderLine) Validate() error {
	if l.Quantity < 1 {
		return fmt.Errorf("line quantity must be at least 1")
	}
	switch l.Kind {
	case LineCatalog:
		if l.ProductID == "" {
			return fmt.Errorf("catalog line requires a product id")
		}
	case LineCustom:
		if l.Name == "" {
			return fmt.Errorf("custom line requires a name")
		}
		if l.ProductID != "" {
			return fmt.Errorf("custom line cannot reference a product")
		}
	default:
		return fmt.Errorf("unknown line kind %q", l.Kind)
	}
	return nil
}

// Subtotal is the line's contribution to the order total.
// Custom lines contribute nothing until quoted.
func (l OrderLine) Subtotal() float64 {
	if l.Kind != LineCatalog {
		return 0
	}
	return l.UnitPrice * float64(l.Quantity)
}

// Order aggregates lines for one client. SupplierID/SupplierName are set
// only when every line is a catalog line from a single supplier;
// otherwise the order is unassigned and triaged manually.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"order_number"`
	ClientID     string      `json:"client_id"`
	ClientName   string      `json:"client_name"`
	SupplierID   string      `json:"supplier_id,omitempty"`
	SupplierName string      `json:"supplier_name,omitempty"`
	Lines        []OrderLine `json:"lines"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	AssignedTo   string      `json:"assigned_to,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	RequestedBy  string      `json:"requested_by,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Order statuses.
const (
	StatusPending    = "pending"
	StatusReceived   = "received"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReceived, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Only forward transitions are allowed; completed and cancelled
// are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusReceived || to == StatusCancelled
	case StatusReceived:
		return to == StatusInProgress || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}
