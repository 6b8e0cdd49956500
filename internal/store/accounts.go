package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

// CreateAccount creates a new account with a generated id.
func CreateAccount(ctx context.Context, db *sql.DB, email, passwordHash, name, role, company string) (*model.Account, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, name, role, company)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, email, passwordHash, name, role, nullable(company),
	)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return GetAccount(ctx, db, id)
}

// GetAccount returns an account by id.
func GetAccount(ctx context.Context, db *sql.DB, id string) (*model.Account, error) {
	a := &model.Account{}
	var company sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, role, company, created_at
		 FROM accounts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &company, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}
	a.Company = company.String
	return a, nil
}

// GetAccountByEmail returns an account by email.
func GetAccountByEmail(ctx context.Context, db *sql.DB, email string) (*model.Account, error) {
	a := &model.Account{}
	var company sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, role, company, created_at
		 FROM accounts WHERE email = ?`, email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &company, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting account by email: %w", err)
	}
	a.Company = company.String
	return a, nil
}

// ListAccounts returns all accounts, optionally filtered by role.
func ListAccounts(ctx context.Context, db *sql.DB, role string) ([]model.Account, error) {
	query := `SELECT id, email, password_hash, name, role, company, created_at
	          FROM accounts`
	var args []any
	if role != "" {
		query += ` WHERE role = ?`
		args = append(args, role)
	}
	query += ` ORDER BY created_at`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		var company sql.NullString
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &company, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		a.Company = company.String
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// UpdateAccount applies the non-nil fields. The role is immutable and
// deliberately not updatable here.
func UpdateAccount(ctx context.Context, db *sql.DB, id string, email, passwordHash, name, company *string) error {
	set := ""
	var args []any
	add := func(col string, v string) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}

	if email != nil {
		add("email", *email)
	}
	if passwordHash != nil {
		add("password_hash", *passwordHash)
	}
	if name != nil {
		add("name", *name)
	}
	if company != nil {
		add("company", *company)
	}
	if set == "" {
		return nil
	}

	args = append(args, id)
	if _, err := db.ExecContext(ctx, `UPDATE accounts SET `+set+` WHERE id = ?`, args...); err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	return nil
}

// DeleteAccount removes an account. Admin accounts must be rejected by
// the caller before reaching this point.
func DeleteAccount(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}

// nullable maps an empty string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
