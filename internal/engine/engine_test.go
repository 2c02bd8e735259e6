package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/merchant"
	"github.com/ledgersieve/ledgersieve/internal/model"
	"github.com/ledgersieve/ledgersieve/internal/rules"
	"github.com/ledgersieve/ledgersieve/internal/suggest"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()

	store, err := rules.NewStore([]model.CategoryRule{
		{
			Name:             "Coffee",
			MerchantContains: "STARBUCKS",
			CategoryID:       model.CategoryIDDining,
			Priority:         80,
			Confidence:       0.9,
			IsActive:         true,
		},
		{
			Name:             "Rideshare",
			MerchantContains: "UBER",
			CategoryID:       model.CategoryIDTransportation,
			Priority:         70,
			Confidence:       0.85,
			IsActive:         true,
		},
	})
	require.NoError(t, err)

	identifier := merchant.NewIdentifier([]model.Merchant{
		{
			ID:            "starbucks",
			CanonicalName: "Starbucks",
			Category:      "Food & Dining",
			MerchantType:  model.MerchantTypeRestaurant,
		},
	})

	return New(store, identifier, suggest.NewMiner(suggest.DefaultConfig()), model.SystemCategories())
}

func txn(id, description string, amount float64) model.Transaction {
	return model.Transaction{
		ID:          id,
		Date:        time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      amount,
		Category:    model.UncategorizedName,
	}
}

func TestEngine_Classify(t *testing.T) {
	eng := testEngine(t)

	c := eng.Classify(txn("1", "STARBUCKS #1234", -5.75))
	require.NotNil(t, c)
	assert.Equal(t, "1", c.TransactionID)
	assert.Equal(t, "Coffee", c.RuleName)
	assert.Equal(t, model.CategoryIDDining, c.CategoryID)
	assert.Equal(t, "Food & Dining", c.Category)
	assert.InDelta(t, 0.9, c.Confidence, 1e-9)
}

func TestEngine_Classify_NoMatch(t *testing.T) {
	eng := testEngine(t)
	assert.Nil(t, eng.Classify(txn("1", "MYSTERY VENDOR", -12)))
}

func TestEngine_Classify_UnknownCategoryID(t *testing.T) {
	store, err := rules.NewStore([]model.CategoryRule{
		{
			Name:             "Orphan",
			MerchantContains: "ACME",
			CategoryID:       999,
			Priority:         50,
			Confidence:       0.8,
			IsActive:         true,
		},
	})
	require.NoError(t, err)
	eng := New(store, merchant.NewIdentifier(nil), suggest.NewMiner(suggest.DefaultConfig()), nil)

	c := eng.Classify(txn("1", "ACME SUPPLIES", -20))
	require.NotNil(t, c)
	assert.Equal(t, "category-999", c.Category)
}

func TestEngine_ClassifyBatch(t *testing.T) {
	eng := testEngine(t)

	result, err := eng.ClassifyBatch(context.Background(), []model.Transaction{
		txn("1", "STARBUCKS #1234", -5.75),
		txn("2", "UBER TRIP 8872", -18.40),
		txn("3", "MYSTERY VENDOR", -12),
	})
	require.NoError(t, err)

	assert.Len(t, result.Classifications, 2)
	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "3", result.Unmatched[0].ID)

	out := result.Report.Render(0)
	assert.Contains(t, out, "Transactions: 3 total, 2 categorized, 1 uncategorized")
}

func TestEngine_ClassifyBatch_Empty(t *testing.T) {
	eng := testEngine(t)

	result, err := eng.ClassifyBatch(context.Background(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, common.ErrNoTransactions)
}

func TestEngine_ClassifyBatch_ContextCanceled(t *testing.T) {
	eng := testEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := eng.ClassifyBatch(ctx, []model.Transaction{txn("1", "STARBUCKS", -5)})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_ClassifyBatch_RecordsRuleUsage(t *testing.T) {
	eng := testEngine(t)

	_, err := eng.ClassifyBatch(context.Background(), []model.Transaction{
		txn("1", "STARBUCKS #1", -5),
		txn("2", "STARBUCKS #2", -6),
	})
	require.NoError(t, err)

	var coffee *model.CategoryRule
	for _, r := range eng.RuleStore().Snapshot() {
		if r.Name == "Coffee" {
			rr := r
			coffee = &rr
		}
	}
	require.NotNil(t, coffee)
	assert.Equal(t, 2, coffee.UseCount)
	require.NotNil(t, coffee.LastMatchDate)
}

func TestEngine_ClassifyBatch_Deterministic(t *testing.T) {
	eng := testEngine(t)

	txns := make([]model.Transaction, 0, 30)
	for i := 0; i < 30; i++ {
		txns = append(txns, txn(fmt.Sprintf("%d", i), "UBER TRIP", -15))
	}

	first, err := eng.ClassifyBatch(context.Background(), txns)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		result, err := eng.ClassifyBatch(context.Background(), txns)
		require.NoError(t, err)
		require.Len(t, result.Classifications, len(first.Classifications))
		for j := range result.Classifications {
			assert.Equal(t, first.Classifications[j].RuleName, result.Classifications[j].RuleName)
			assert.Equal(t, first.Classifications[j].TransactionID, result.Classifications[j].TransactionID)
		}
	}
}

func TestEngine_IdentifyMerchant(t *testing.T) {
	eng := testEngine(t)

	match := eng.IdentifyMerchant("STARBUCKS #1234")
	require.NotNil(t, match)
	assert.Equal(t, "Starbucks", match.Merchant.CanonicalName)
	assert.Equal(t, model.MatchExact, match.MatchType)

	assert.Nil(t, eng.IdentifyMerchant("TOTALLY UNKNOWN"))
}

func TestEngine_GenerateSuggestions(t *testing.T) {
	eng := testEngine(t)

	suggestions := eng.GenerateSuggestions([]model.Transaction{
		txn("1", "OXXO 123", -10),
		txn("2", "OXXO 456", -10),
		txn("3", "OXXO 789", -10),
	})
	require.Len(t, suggestions, 1)
	assert.Equal(t, "OXXO", suggestions[0].MerchantPattern)
}
