package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalUsers      int     `json:"total_users"`
	TotalClients    int     `json:"total_clients"`
	TotalSuppliers  int     `json:"total_suppliers"`
	TotalOrders     int     `json:"total_orders"`
	TotalProducts   int     `json:"total_products"`
	PendingRequests int     `json:"pending_requests"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// GetStats computes the admin aggregates. Revenue is the sum of totals
// over completed orders only.
func GetStats(ctx context.Context, db *sql.DB) (*Stats, error) {
	s := &Stats{}

	counts := []struct {
		dest  *int
		query string
		args  []any
	}{
		{&s.TotalUsers, `SELECT COUNT(*) FROM accounts`, nil},
		{&s.TotalClients, `SELECT COUNT(*) FROM accounts WHERE role = ?`, []any{model.RoleClient}},
		{&s.TotalSuppliers, `SELECT COUNT(*) FROM accounts WHERE role = ?`, []any{model.RoleSupplier}},
		{&s.TotalOrders, `SELECT COUNT(*) FROM orders`, nil},
		{&s.TotalProducts, `SELECT COUNT(*) FROM products`, nil},
		{&s.PendingRequests, `SELECT COUNT(*) FROM registration_requests WHERE status = ?`, []any{model.RequestPending}},
	}
	for _, c := range counts {
		if err := db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("counting stats: %w", err)
		}
	}

	var revenue sql.NullFloat64
	err := db.QueryRowContext(ctx,
		`SELECT SUM(total) FROM orders WHERE status = ?`, model.StatusCompleted,
	).Scan(&revenue)
	if err != nil {
		return nil, fmt.Errorf("summing revenue: %w", err)
	}
	s.TotalRevenue = revenue.Float64

	return s, nil
}
