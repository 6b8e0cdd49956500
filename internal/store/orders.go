package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

const orderColumns = `id, order_number, client_id, client_name, supplier_id, supplier_name,
	lines, total, status, assigned_to, notes, requested_by, created_at, updated_at`

// CreateOrder persists a fully aggregated order. The order id, number,
// total and supplier resolution are computed by the order package
// before this call.
func CreateOrder(ctx context.Context, db *sql.DB, o *model.Order) (*model.Order, error) {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return nil, fmt.Errorf("encoding order lines: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO orders (id, order_number, client_id, client_name, supplier_id,
		     supplier_name, lines, total, status, notes, requested_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.OrderNumber, o.ClientID, o.ClientName,
		nullable(o.SupplierID), nullable(o.SupplierName),
		string(lines), o.Total, o.Status, nullable(o.Notes), nullable(o.RequestedBy),
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	return GetOrder(ctx, db, o.ID)
}

// GetOrder returns an order by id.
func GetOrder(ctx context.Context, db *sql.DB, id string) (*model.Order, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id,
	)
	o, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return o, nil
}

// ListOrders returns orders newest first, optionally scoped to a client
// or to a resolved supplier. Empty filters return everything (admin).
func ListOrders(ctx context.Context, db *sql.DB, clientID, supplierID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any

	if clientID != "" {
		query += ` AND client_id = ?`
		args = append(args, clientID)
	}
	if supplierID != "" {
		query += ` AND supplier_id = ?`
		args = append(args, supplierID)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus sets an order's status and optional assignee.
func UpdateOrderStatus(ctx context.Context, db *sql.DB, id, status, assignedTo string) error {
	var err error
	if assignedTo != "" {
		_, err = db.ExecContext(ctx,
			`UPDATE orders SET status = ?, assigned_to = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			status, assignedTo, id,
		)
	} else {
		_, err = db.ExecContext(ctx,
			`UPDATE orders SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			status, id,
		)
	}
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	return nil
}

func scanOrder(scan func(...any) error) (*model.Order, error) {
	o := &model.Order{}
	var supplierID, supplierName, assignedTo, notes, requestedBy sql.NullString
	var lines string
	err := scan(&o.ID, &o.OrderNumber, &o.ClientID, &o.ClientName, &supplierID,
		&supplierName, &lines, &o.Total, &o.Status, &assignedTo, &notes,
		&requestedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.SupplierID = supplierID.String
	o.SupplierName = supplierName.String
	o.AssignedTo = assignedTo.String
	o.Notes = notes.String
	o.RequestedBy = requestedBy.String
	if err := json.Unmarshal([]byte(lines), &o.Lines); err != nil {
		return nil, fmt.Errorf("decoding order lines: %w", err)
	}
	return o, nil
}
