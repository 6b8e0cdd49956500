package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

// CreateQuotation appends a quotation to an order. Quotations are never
// updated or deleted afterwards.
func CreateQuotation(ctx context.Context, db *sql.DB, q *model.Quotation) (*model.Quotation, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO quotations (id, order_id, supplier_id, supplier_name, file_name,
		     file_data, amount, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, q.OrderID, q.SupplierID, q.SupplierName, q.FileName, q.FileData,
		q.Amount, nullable(q.Notes),
	)
	if err != nil {
		return nil, fmt.Errorf("creating quotation: %w", err)
	}

	return GetQuotation(ctx, db, id)
}

// GetQuotation returns a quotation by id.
func GetQuotation(ctx context.Context, db *sql.DB, id string) (*model.Quotation, error) {
	q := &model.Quotation{}
	var amount sql.NullFloat64
	var notes sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, order_id, supplier_id, supplier_name, file_name, file_data,
		        amount, notes, created_at
		 FROM quotations WHERE id = ?`, id,
	).Scan(&q.ID, &q.OrderID, &q.SupplierID, &q.SupplierName, &q.FileName,
		&q.FileData, &amount, &notes, &q.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}
	if amount.Valid {
		q.Amount = &amount.Float64
	}
	q.Notes = notes.String
	return q, nil
}

// ListQuotations returns all quotations on an order, oldest first.
func ListQuotations(ctx context.Context, db *sql.DB, orderID string) ([]model.Quotation, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, order_id, supplier_id, supplier_name, file_name, file_data,
		        amount, notes, created_at
		 FROM quotations WHERE order_id = ? ORDER BY created_at`, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}
	defer rows.Close()

	var quotations []model.Quotation
	for rows.Next() {
		var q model.Quotation
		var amount sql.NullFloat64
		var notes sql.NullString
		if err := rows.Scan(&q.ID, &q.OrderID, &q.SupplierID, &q.SupplierName,
			&q.FileName, &q.FileData, &amount, &notes, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning quotation: %w", err)
		}
		if amount.Valid {
			q.Amount = &amount.Float64
		}
		q.Notes = notes.String
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}
