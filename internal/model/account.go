package model

import "time"

// Account is an authenticated identity: a client (boat operator),
// a supplier (vendor), or an administrator.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Company      string    `json:"company,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles. An account's role is fixed at creation.
const (
	RoleClient   = "client"
	RoleSupplier = "supplier"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleSupplier || role == RoleAdmin
}

// RegistrableRole reports whether role may be chosen on public
// registration. Admin accounts are never self-registered.
func RegistrableRole(role string) bool {
	return role == RoleClient || role == RoleSupplier
}
