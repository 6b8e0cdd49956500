package model

import "time"

// Notification is a one-line alert addressed to one account.
// Delivery is pull-based; the only mutation is marking it read.
type Notification struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
