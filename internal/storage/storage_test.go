package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
	"github.com/ledgersieve/ledgersieve/internal/rules"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	st, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func seededStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	st := newTestStorage(t)
	err := st.SeedSystemCategories(context.Background(), model.SystemCategories(), rules.SystemRules())
	require.NoError(t, err)
	return st
}

func TestMigrate_Idempotent(t *testing.T) {
	st := newTestStorage(t)
	require.NoError(t, st.Migrate(context.Background()))
	require.NoError(t, st.Migrate(context.Background()))
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	st, err := NewSQLiteStorage("")
	assert.Nil(t, st)
	assert.Error(t, err)
}

func TestSeedSystemCategories(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	categories, err := st.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(model.SystemCategories()))

	persisted, err := st.Rules(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, len(rules.SystemRules()))

	// Seeding again must not duplicate anything.
	err = st.SeedSystemCategories(ctx, model.SystemCategories(), rules.SystemRules())
	require.NoError(t, err)

	categories, err = st.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, len(model.SystemCategories()))
}

func TestCategoryByID(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	c, err := st.CategoryByID(ctx, model.CategoryIDDining)
	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", c.Name)
	assert.True(t, c.IsSystem)

	_, err = st.CategoryByID(ctx, 9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateCategory(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	parent := model.CategoryIDDining
	category := model.Category{
		Name:      "Coffee Shops",
		Icon:      "☕",
		Color:     "#8B4513",
		ParentID:  &parent,
		SortOrder: 50,
		IsActive:  true,
	}
	require.NoError(t, st.CreateCategory(ctx, &category))
	assert.Greater(t, category.ID, model.SystemCategoryMaxID)

	got, err := st.CategoryByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Shops", got.Name)
	assert.False(t, got.IsSystem)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent, *got.ParentID)
}

func TestCreateCategory_Validation(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	err := st.CreateCategory(ctx, &model.Category{})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	err = st.CreateCategory(ctx, &model.Category{Name: "X", IsSystem: true})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	err = st.CreateCategory(ctx, &model.Category{Name: "X", SortOrder: -1})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestSaveRule_RoundTrip(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	amountMin := 5.0
	amountMax := 50.0
	sign := model.AmountSignNegative
	rule := model.CategoryRule{
		Name:        "Taxi rides",
		CategoryID:  model.CategoryIDTransportation,
		RegexPattern: `\bCAB\b`,
		AmountMin:   &amountMin,
		AmountMax:   &amountMax,
		AmountSign:  &sign,
		AccountType: "checking",
		DaysOfWeek:  []time.Weekday{time.Friday, time.Saturday},
		Priority:    75,
		Confidence:  0.8,
		IsActive:    true,
	}
	require.NoError(t, st.SaveRule(ctx, &rule))
	assert.NotZero(t, rule.ID)

	persisted, err := st.Rules(ctx)
	require.NoError(t, err)

	var got *model.CategoryRule
	for i := range persisted {
		if persisted[i].ID == rule.ID {
			got = &persisted[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, "Taxi rides", got.Name)
	assert.Equal(t, `\bCAB\b`, got.RegexPattern)
	require.NotNil(t, got.AmountMin)
	assert.InDelta(t, 5.0, *got.AmountMin, 1e-9)
	require.NotNil(t, got.AmountMax)
	assert.InDelta(t, 50.0, *got.AmountMax, 1e-9)
	require.NotNil(t, got.AmountSign)
	assert.Equal(t, model.AmountSignNegative, *got.AmountSign)
	assert.Equal(t, "checking", got.AccountType)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, got.DaysOfWeek)
	assert.Equal(t, 75, got.Priority)
	assert.Nil(t, got.LastMatchDate)
}

func TestSaveRule_Validation(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	// No conditions.
	err := st.SaveRule(ctx, &model.CategoryRule{
		Name:       "Empty",
		CategoryID: model.CategoryIDDining,
		Confidence: 0.8,
	})
	assert.ErrorIs(t, err, common.ErrInvalidRule)

	// Confidence out of range.
	err = st.SaveRule(ctx, &model.CategoryRule{
		Name:             "Overconfident",
		MerchantContains: "X",
		CategoryID:       model.CategoryIDDining,
		Confidence:       1.5,
	})
	assert.ErrorIs(t, err, common.ErrInvalidRule)

	// Unknown category.
	err = st.SaveRule(ctx, &model.CategoryRule{
		Name:             "Orphan",
		MerchantContains: "X",
		CategoryID:       9999,
		Confidence:       0.8,
	})
	assert.ErrorIs(t, err, common.ErrInvalidRule)
}

func TestRules_OrderedByPriority(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	persisted, err := st.Rules(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, persisted)

	for i := 1; i < len(persisted); i++ {
		assert.GreaterOrEqual(t, persisted[i-1].Priority, persisted[i].Priority)
	}
}

func TestRecordRuleMatch(t *testing.T) {
	st := seededStorage(t)
	ctx := context.Background()

	rule := model.CategoryRule{
		Name:             "Coffee",
		MerchantContains: "STARBUCKS",
		CategoryID:       model.CategoryIDDining,
		Priority:         80,
		Confidence:       0.9,
		IsActive:         true,
	}
	require.NoError(t, st.SaveRule(ctx, &rule))

	when := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, st.RecordRuleMatch(ctx, rule.ID, when))
	require.NoError(t, st.RecordRuleMatch(ctx, rule.ID, when.Add(time.Hour)))

	persisted, err := st.Rules(ctx)
	require.NoError(t, err)
	var got *model.CategoryRule
	for i := range persisted {
		if persisted[i].ID == rule.ID {
			got = &persisted[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, 2, got.UseCount)
	require.NotNil(t, got.LastMatchDate)

	assert.ErrorIs(t, st.RecordRuleMatch(ctx, 99999, when), common.ErrNotFound)
}

func TestCustomMerchants_RoundTrip(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	m := model.Merchant{
		ID:            "oxxo",
		CanonicalName: "OXXO",
		Category:      "Groceries",
		MerchantType:  model.MerchantTypeGrocery,
		Aliases:       []string{"OXXO GAS", "OXXO MX"},
		Patterns:      []string{`^OXXO\s`},
	}
	require.NoError(t, st.SaveCustomMerchant(ctx, m))

	merchants, err := st.CustomMerchants(ctx)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, m.CanonicalName, merchants[0].CanonicalName)
	assert.Equal(t, m.Aliases, merchants[0].Aliases)
	assert.Equal(t, m.Patterns, merchants[0].Patterns)
	assert.Equal(t, model.MerchantTypeGrocery, merchants[0].MerchantType)
}

func TestSaveCustomMerchant_Validation(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	err := st.SaveCustomMerchant(ctx, model.Merchant{CanonicalName: "X"})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	err = st.SaveCustomMerchant(ctx, model.Merchant{ID: "x"})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestWeekdayEncoding(t *testing.T) {
	assert.Equal(t, "", encodeWeekdays(nil))
	assert.Nil(t, decodeWeekdays(""))

	days := []time.Weekday{time.Sunday, time.Wednesday, time.Saturday}
	assert.Equal(t, "0,3,6", encodeWeekdays(days))
	assert.Equal(t, days, decodeWeekdays("0,3,6"))

	// Malformed entries are dropped.
	assert.Equal(t, []time.Weekday{time.Monday}, decodeWeekdays("1,9,x"))
}
