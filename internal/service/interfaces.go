// Package service defines the collaborator interfaces the categorization core
// depends on. Implementations are injected explicitly; the core holds no
// global state.
package service

import (
	"context"
	"time"

	"github.com/ledgersieve/ledgersieve/internal/model"
)

// CategoryRegistry provides the category hierarchy, persisted separately from
// the core.
type CategoryRegistry interface {
	// Categories returns all active categories.
	Categories(ctx context.Context) ([]model.Category, error)
	// CategoryByID returns a single category.
	CategoryByID(ctx context.Context, id int) (model.Category, error)
	// CreateCategory persists a custom (non-system) category.
	CreateCategory(ctx context.Context, category *model.Category) error
}

// RuleRepository loads and saves rule definitions. The core only evaluates
// and proposes rules; persistence happens here.
type RuleRepository interface {
	// Rules returns all persisted rules.
	Rules(ctx context.Context) ([]model.CategoryRule, error)
	// SaveRule persists a new rule and assigns its ID.
	SaveRule(ctx context.Context, rule *model.CategoryRule) error
	// RecordRuleMatch updates hit accounting after a classification run.
	RecordRuleMatch(ctx context.Context, id int, when time.Time) error
}

// MerchantCatalog persists user-added merchant catalog entries.
type MerchantCatalog interface {
	// SaveCustomMerchant persists a user-added catalog entry.
	SaveCustomMerchant(ctx context.Context, m model.Merchant) error
	// CustomMerchants returns persisted entries in insertion order.
	CustomMerchants(ctx context.Context) ([]model.Merchant, error)
}
