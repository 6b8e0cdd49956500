package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

// CreateCategory inserts a category. Slug uniqueness is enforced by the
// schema; callers check for an existing slug first to return a clean
// conflict.
func CreateCategory(ctx context.Context, db *sql.DB, name, slug, description, createdBy string) (*model.Category, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO categories (id, name, slug, description, created_by)
		 VALUES (?, ?, ?, ?, ?)`,
		id, name, slug, nullable(description), nullable(createdBy),
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return GetCategory(ctx, db, id)
}

// GetCategory returns a category by id.
func GetCategory(ctx context.Context, db *sql.DB, id string) (*model.Category, error) {
	c := &model.Category{}
	var description, createdBy sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, slug, description, created_by, created_at
		 FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Slug, &description, &createdBy, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	c.Description = description.String
	c.CreatedBy = createdBy.String
	return c, nil
}

// GetCategoryBySlug returns a category by slug.
func GetCategoryBySlug(ctx context.Context, db *sql.DB, slug string) (*model.Category, error) {
	c := &model.Category{}
	var description, createdBy sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, slug, description, created_by, created_at
		 FROM categories WHERE slug = ?`, slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &description, &createdBy, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category by slug: %w", err)
	}
	c.Description = description.String
	c.CreatedBy = createdBy.String
	return c, nil
}

// ListCategories returns all categories ordered by name.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.Category, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, slug, description, created_by, created_at
		 FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		var description, createdBy sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &description, &createdBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Description = description.String
		c.CreatedBy = createdBy.String
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteCategory removes a category. Returns false when nothing matched.
func DeleteCategory(ctx context.Context, db *sql.DB, id string) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting category: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting category: %w", err)
	}
	return n > 0, nil
}
