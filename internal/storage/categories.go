package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

// SeedSystemCategories inserts the pre-seeded system categories and rules on
// first run. Existing rows are left untouched; system data is immutable.
func (s *SQLiteStorage) SeedSystemCategories(ctx context.Context, categories []model.Category, rules []model.CategoryRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE is_system = 1").Scan(&count); err != nil {
		return fmt.Errorf("failed to count system categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name, icon, color, parent_id, sort_order, budget_amount, is_system, is_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Icon, c.Color, c.ParentID, c.SortOrder, c.BudgetAmount, c.IsSystem, c.IsActive,
		); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}

	for _, r := range rules {
		if err := insertRule(ctx, tx, &r); err != nil {
			return fmt.Errorf("failed to seed rule %q: %w", r.Name, err)
		}
	}

	return tx.Commit()
}

// Categories returns all active categories ordered by sort order.
func (s *SQLiteStorage) Categories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, icon, color, parent_id, sort_order, budget_amount,
		        is_system, is_active, created_at, updated_at
		 FROM categories WHERE is_active = 1 ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CategoryByID returns a single category.
func (s *SQLiteStorage) CategoryByID(ctx context.Context, id int) (model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return model.Category{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, icon, color, parent_id, sort_order, budget_amount,
		        is_system, is_active, created_at, updated_at
		 FROM categories WHERE id = ?`, id)

	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, common.ErrNotFound
	}
	return c, err
}

// CreateCategory persists a custom category. System categories are seeded,
// never created through this path.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", common.ErrInvalidConfig)
	}
	if category.IsSystem {
		return fmt.Errorf("%w: system categories are immutable", common.ErrInvalidConfig)
	}
	if category.SortOrder < 0 {
		return fmt.Errorf("%w: sort order must not be negative", common.ErrInvalidConfig)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, icon, color, parent_id, sort_order, budget_amount, is_system, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		category.Name, category.Icon, category.Color, category.ParentID,
		category.SortOrder, category.BudgetAmount, category.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get category ID: %w", err)
	}
	category.ID = int(id)
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (model.Category, error) {
	var c model.Category
	var parentID sql.NullInt64
	var budget sql.NullFloat64

	err := row.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &parentID, &c.SortOrder,
		&budget, &c.IsSystem, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.Category{}, err
	}

	if parentID.Valid {
		p := int(parentID.Int64)
		c.ParentID = &p
	}
	if budget.Valid {
		b := budget.Float64
		c.BudgetAmount = &b
	}
	return c, nil
}
