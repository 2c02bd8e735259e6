package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

// listSeparator joins alias and pattern lists in a single column. Pipes do
// not occur in catalog strings.
const listSeparator = "|"

// SaveCustomMerchant persists a user-added catalog entry so it survives
// restarts. The in-memory identifier is rebuilt separately by the caller.
func (s *SQLiteStorage) SaveCustomMerchant(ctx context.Context, m model.Merchant) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if m.ID == "" || m.CanonicalName == "" {
		return fmt.Errorf("%w: merchant id and canonical name are required", common.ErrInvalidConfig)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_merchants (id, canonical_name, category, merchant_type, aliases, patterns)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.CanonicalName, m.Category, string(m.MerchantType),
		strings.Join(m.Aliases, listSeparator), strings.Join(m.Patterns, listSeparator),
	)
	if err != nil {
		return fmt.Errorf("failed to save custom merchant: %w", err)
	}
	return nil
}

// CustomMerchants returns all persisted user-added catalog entries in
// insertion order.
func (s *SQLiteStorage) CustomMerchants(ctx context.Context) ([]model.Merchant, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, canonical_name, category, merchant_type, aliases, patterns
		 FROM custom_merchants ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom merchants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var merchants []model.Merchant
	for rows.Next() {
		var m model.Merchant
		var merchantType, aliases, patterns string
		if err := rows.Scan(&m.ID, &m.CanonicalName, &m.Category, &merchantType, &aliases, &patterns); err != nil {
			return nil, fmt.Errorf("failed to scan custom merchant: %w", err)
		}
		m.MerchantType = model.MerchantType(merchantType)
		m.Aliases = splitList(aliases)
		m.Patterns = splitList(patterns)
		merchants = append(merchants, m)
	}
	return merchants, rows.Err()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}
