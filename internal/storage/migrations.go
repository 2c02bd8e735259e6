package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Categories and rules",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY,
					name TEXT UNIQUE NOT NULL,
					icon TEXT NOT NULL DEFAULT '',
					color TEXT NOT NULL DEFAULT '',
					parent_id INTEGER REFERENCES categories(id),
					sort_order INTEGER NOT NULL DEFAULT 0 CHECK (sort_order >= 0),
					budget_amount REAL CHECK (budget_amount IS NULL OR budget_amount >= 0),
					is_system BOOLEAN NOT NULL DEFAULT 0,
					is_active BOOLEAN NOT NULL DEFAULT 1,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_categories_parent ON categories(parent_id)`,

				`CREATE TABLE IF NOT EXISTS category_rules (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					category_id INTEGER NOT NULL REFERENCES categories(id),
					merchant_contains TEXT NOT NULL DEFAULT '',
					merchant_exact TEXT NOT NULL DEFAULT '',
					description_contains TEXT NOT NULL DEFAULT '',
					regex_pattern TEXT NOT NULL DEFAULT '',
					amount_min REAL,
					amount_max REAL,
					amount_sign TEXT CHECK (amount_sign IN ('positive', 'negative')),
					account_type TEXT NOT NULL DEFAULT '',
					days_of_week TEXT NOT NULL DEFAULT '',
					priority INTEGER NOT NULL DEFAULT 0,
					confidence REAL NOT NULL DEFAULT 0 CHECK (confidence BETWEEN 0 AND 1),
					is_active BOOLEAN NOT NULL DEFAULT 1,
					is_system BOOLEAN NOT NULL DEFAULT 0,
					is_recurring BOOLEAN NOT NULL DEFAULT 0,
					use_count INTEGER NOT NULL DEFAULT 0,
					last_match_date DATETIME,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_rules_priority ON category_rules(priority DESC)`,
				`CREATE INDEX idx_rules_category ON category_rules(category_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Custom merchants",
		Up: func(tx *sql.Tx) error {
			query := `CREATE TABLE IF NOT EXISTS custom_merchants (
				id TEXT PRIMARY KEY,
				canonical_name TEXT NOT NULL,
				category TEXT NOT NULL,
				merchant_type TEXT NOT NULL DEFAULT '',
				aliases TEXT NOT NULL DEFAULT '',
				patterns TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`
			if _, err := tx.Exec(query); err != nil {
				return fmt.Errorf("failed to create custom_merchants: %w", err)
			}
			return nil
		},
	},
}

// Migrate applies all pending migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create schema_versions: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		slog.Info("applying migration", "version", m.Version, "description", m.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", m.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_versions (version) VALUES (?)", m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}
