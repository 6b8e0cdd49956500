package model

import "time"

// RegistrationRequest is a public onboarding submission awaiting admin
// review. Approval manufactures an account; the request transitions at
// most once out of pending.
type RegistrationRequest struct {
	ID          string     `json:"id"`
	BoatName    string     `json:"boat_name"`
	CaptainName string     `json:"captain_name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	ProcessedBy string     `json:"processed_by,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Registration request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)
