package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

// EmitNotification writes a best-effort alert for an account. The
// target's existence is deliberately not verified: a notification to a
// deleted account is inert but harmless.
func EmitNotification(ctx context.Context, db *sql.DB, accountID, message string) (*model.Notification, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO notifications (id, account_id, message) VALUES (?, ?, ?)`,
		id, accountID, message,
	)
	if err != nil {
		return nil, fmt.Errorf("emitting notification: %w", err)
	}

	return getNotification(ctx, db, id)
}

func getNotification(ctx context.Context, db *sql.DB, id string) (*model.Notification, error) {
	n := &model.Notification{}
	err := db.QueryRowContext(ctx,
		`SELECT id, account_id, message, read, created_at
		 FROM notifications WHERE id = ?`, id,
	).Scan(&n.ID, &n.AccountID, &n.Message, &n.Read, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting notification: %w", err)
	}
	return n, nil
}

// ListNotifications returns an account's notifications, newest first.
func ListNotifications(ctx context.Context, db *sql.DB, accountID string) ([]model.Notification, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, account_id, message, read, created_at
		 FROM notifications WHERE account_id = ? ORDER BY created_at DESC`, accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead marks a notification read, scoped to its owner.
// Returns false when no notification matches id and owner. Marking an
// already-read notification again succeeds (idempotent).
func MarkNotificationRead(ctx context.Context, db *sql.DB, id, accountID string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ? AND account_id = ?`,
		id, accountID,
	)
	if err != nil {
		return false, fmt.Errorf("marking notification read: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking notification read: %w", err)
	}
	return n > 0, nil
}
