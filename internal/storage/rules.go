package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

// Rules returns all persisted rules ordered by descending priority, ties by
// insertion order.
func (s *SQLiteStorage) Rules(ctx context.Context) ([]model.CategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category_id, merchant_contains, merchant_exact,
		        description_contains, regex_pattern, amount_min, amount_max,
		        amount_sign, account_type, days_of_week, priority, confidence,
		        is_active, is_system, is_recurring, use_count, last_match_date,
		        created_at, updated_at
		 FROM category_rules ORDER BY priority DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.CategoryRule
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// SaveRule persists a new rule and assigns its ID. The referenced category
// must exist and be active.
func (s *SQLiteStorage) SaveRule(ctx context.Context, rule *model.CategoryRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if !rule.HasConditions() {
		return fmt.Errorf("%w: rule %q has no conditions", common.ErrInvalidRule, rule.Name)
	}
	if rule.Confidence < 0 || rule.Confidence > 1 {
		return fmt.Errorf("%w: confidence outside [0,1]", common.ErrInvalidRule)
	}

	var categoryCount int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE id = ? AND is_active = 1",
		rule.CategoryID).Scan(&categoryCount)
	if err != nil {
		return fmt.Errorf("failed to verify category: %w", err)
	}
	if categoryCount == 0 {
		return fmt.Errorf("%w: category %d does not exist or is inactive",
			common.ErrInvalidRule, rule.CategoryID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertRule(ctx, tx, rule); err != nil {
		return err
	}
	return tx.Commit()
}

// RecordRuleMatch updates hit accounting after a classification run.
func (s *SQLiteStorage) RecordRuleMatch(ctx context.Context, id int, when time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE category_rules
		 SET use_count = use_count + 1, last_match_date = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`, when, id)
	if err != nil {
		return fmt.Errorf("failed to record rule match: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rule update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func insertRule(ctx context.Context, tx *sql.Tx, rule *model.CategoryRule) error {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO category_rules (
			name, category_id, merchant_contains, merchant_exact,
			description_contains, regex_pattern, amount_min, amount_max,
			amount_sign, account_type, days_of_week, priority, confidence,
			is_active, is_system, is_recurring
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rule.Name, rule.CategoryID, rule.MerchantContains, rule.MerchantExact,
		rule.DescriptionContains, rule.RegexPattern, rule.AmountMin, rule.AmountMax,
		signToNullString(rule.AmountSign), rule.AccountType,
		encodeWeekdays(rule.DaysOfWeek), rule.Priority, rule.Confidence,
		rule.IsActive, rule.IsSystem, rule.IsRecurring,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get rule ID: %w", err)
	}
	rule.ID = int(id)
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = time.Now()
	return nil
}

func scanRule(rows *sql.Rows) (model.CategoryRule, error) {
	var r model.CategoryRule
	var amountMin, amountMax sql.NullFloat64
	var amountSign sql.NullString
	var lastMatch sql.NullTime
	var days string

	err := rows.Scan(&r.ID, &r.Name, &r.CategoryID, &r.MerchantContains,
		&r.MerchantExact, &r.DescriptionContains, &r.RegexPattern,
		&amountMin, &amountMax, &amountSign, &r.AccountType, &days,
		&r.Priority, &r.Confidence, &r.IsActive, &r.IsSystem, &r.IsRecurring,
		&r.UseCount, &lastMatch, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return model.CategoryRule{}, err
	}

	if amountMin.Valid {
		v := amountMin.Float64
		r.AmountMin = &v
	}
	if amountMax.Valid {
		v := amountMax.Float64
		r.AmountMax = &v
	}
	if amountSign.Valid {
		sign := model.AmountSign(amountSign.String)
		r.AmountSign = &sign
	}
	if lastMatch.Valid {
		t := lastMatch.Time
		r.LastMatchDate = &t
	}
	r.DaysOfWeek = decodeWeekdays(days)
	return r, nil
}

func signToNullString(sign *model.AmountSign) sql.NullString {
	if sign == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*sign), Valid: true}
}

// encodeWeekdays serializes a weekday set as comma-joined integers.
func encodeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(encoded string) []time.Weekday {
	if encoded == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(encoded, ",") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}
