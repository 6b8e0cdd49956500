package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

// ErrAlreadyProcessed is returned when a registration request has
// already left the pending state.
var ErrAlreadyProcessed = errors.New("registration request already processed")

// CreateRegistrationRequest records a pending onboarding request.
func CreateRegistrationRequest(ctx context.Context, db *sql.DB, boatName, captainName, phone, email string) (*model.RegistrationRequest, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO registration_requests (id, boat_name, captain_name, phone, email)
		 VALUES (?, ?, ?, ?, ?)`,
		id, boatName, captainName, phone, email,
	)
	if err != nil {
		return nil, fmt.Errorf("creating registration request: %w", err)
	}

	return GetRegistrationRequest(ctx, db, id)
}

// GetRegistrationRequest returns a request by id.
func GetRegistrationRequest(ctx context.Context, db *sql.DB, id string) (*model.RegistrationRequest, error) {
	r := &model.RegistrationRequest{}
	var processedBy sql.NullString
	var processedAt sql.NullTime
	err := db.QueryRowContext(ctx,
		`SELECT id, boat_name, captain_name, phone, email, status, processed_by,
		        processed_at, created_at
		 FROM registration_requests WHERE id = ?`, id,
	).Scan(&r.ID, &r.BoatName, &r.CaptainName, &r.Phone, &r.Email, &r.Status,
		&processedBy, &processedAt, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting registration request: %w", err)
	}
	r.ProcessedBy = processedBy.String
	if processedAt.Valid {
		t := processedAt.Time
		r.ProcessedAt = &t
	}
	return r, nil
}

// HasPendingRegistrationRequest reports whether a pending request
// exists for the email.
func HasPendingRegistrationRequest(ctx context.Context, db *sql.DB, email string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registration_requests WHERE email = ? AND status = ?`,
		email, model.RequestPending,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking pending registration request: %w", err)
	}
	return count > 0, nil
}

// ListRegistrationRequests returns requests newest first, optionally
// filtered by status.
func ListRegistrationRequests(ctx context.Context, db *sql.DB, status string) ([]model.RegistrationRequest, error) {
	query := `SELECT id, boat_name, captain_name, phone, email, status, processed_by,
	                 processed_at, created_at
	          FROM registration_requests`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing registration requests: %w", err)
	}
	defer rows.Close()

	var requests []model.RegistrationRequest
	for rows.Next() {
		var r model.RegistrationRequest
		var processedBy sql.NullString
		var processedAt sql.NullTime
		if err := rows.Scan(&r.ID, &r.BoatName, &r.CaptainName, &r.Phone, &r.Email,
			&r.Status, &processedBy, &processedAt, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning registration request: %w", err)
		}
		r.ProcessedBy = processedBy.String
		if processedAt.Valid {
			t := processedAt.Time
			r.ProcessedAt = &t
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// ProcessRegistrationRequest transitions a pending request to approved
// or rejected. The guard on the current status makes the transition
// one-shot: a second attempt returns ErrAlreadyProcessed.
func ProcessRegistrationRequest(ctx context.Context, db *sql.DB, id, status, processedBy string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE registration_requests
		 SET status = ?, processed_by = ?, processed_at = ?
		 WHERE id = ? AND status = ?`,
		status, processedBy, time.Now().UTC(), id, model.RequestPending,
	)
	if err != nil {
		return fmt.Errorf("processing registration request: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("processing registration request: %w", err)
	}
	if n == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}
