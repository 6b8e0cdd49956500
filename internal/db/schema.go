package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Every collection is a flat table
// keyed by a generated opaque uuid, never the sqlite rowid. Order line
// items are embedded as a JSON column; quotation files are embedded as
// base64 text.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL,
    role          TEXT NOT NULL CHECK (role IN ('client', 'supplier', 'admin')),
    company       TEXT,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS products (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    description   TEXT,
    category      TEXT,
    price         REAL NOT NULL,
    base_price    REAL,
    profit_type   TEXT CHECK (profit_type IN ('percentage', 'fixed') OR profit_type IS NULL),
    profit_value  REAL,
    tax_rate      REAL,
    supplier_id   TEXT NOT NULL REFERENCES accounts(id),
    supplier_name TEXT NOT NULL,
    sku           TEXT,
    image_url     TEXT,
    image         BLOB,
    image_mime    TEXT,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

CREATE TABLE IF NOT EXISTS orders (
    id            TEXT PRIMARY KEY,
    order_number  TEXT NOT NULL,
    client_id     TEXT NOT NULL REFERENCES accounts(id),
    client_name   TEXT NOT NULL,
    supplier_id   TEXT,
    supplier_name TEXT,
    lines         TEXT NOT NULL,
    total         REAL NOT NULL,
    status        TEXT NOT NULL DEFAULT 'pending'
                  CHECK (status IN ('pending', 'received', 'in_progress', 'completed', 'cancelled')),
    assigned_to   TEXT,
    notes         TEXT,
    requested_by  TEXT,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id);
CREATE INDEX IF NOT EXISTS idx_orders_supplier ON orders(supplier_id);

CREATE TABLE IF NOT EXISTS quotations (
    id            TEXT PRIMARY KEY,
    order_id      TEXT NOT NULL REFERENCES orders(id),
    supplier_id   TEXT NOT NULL,
    supplier_name TEXT NOT NULL,
    file_name     TEXT NOT NULL,
    file_data     TEXT NOT NULL,
    amount        REAL,
    notes         TEXT,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_quotations_order ON quotations(order_id);

CREATE TABLE IF NOT EXISTS notifications (
    id         TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    message    TEXT NOT NULL,
    read       INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notifications_account ON notifications(account_id);

CREATE TABLE IF NOT EXISTS registration_requests (
    id           TEXT PRIMARY KEY,
    boat_name    TEXT NOT NULL,
    captain_name TEXT NOT NULL,
    phone        TEXT NOT NULL,
    email        TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'pending'
                 CHECK (status IN ('pending', 'approved', 'rejected')),
    processed_by TEXT,
    processed_at DATETIME,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS categories (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    slug        TEXT NOT NULL UNIQUE,
    description TEXT,
    created_by  TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
