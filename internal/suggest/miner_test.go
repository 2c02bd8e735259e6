package suggest

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersieve/ledgersieve/internal/model"
)

func uncategorized(id, description string, amount float64) model.Transaction {
	return model.Transaction{
		ID:          id,
		Date:        time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Description: description,
		Amount:      amount,
		Category:    model.UncategorizedName,
	}
}

func TestMiner_EmptyInput(t *testing.T) {
	m := NewMiner(DefaultConfig())

	assert.Empty(t, m.GenerateSuggestions(nil))
	assert.Empty(t, m.GenerateSuggestions([]model.Transaction{}))
}

func TestMiner_RecurringGroup(t *testing.T) {
	m := NewMiner(DefaultConfig())

	suggestions := m.GenerateSuggestions([]model.Transaction{
		uncategorized("1", "OXXO 123", -10.00),
		uncategorized("2", "OXXO 456", -10.00),
		uncategorized("3", "OXXO 789", -10.00),
	})

	require.Len(t, suggestions, 1)
	s := suggestions[0]
	assert.Equal(t, "OXXO", s.MerchantPattern)
	assert.Equal(t, 3, s.TransactionCount)
	assert.InDelta(t, -10.00, s.AverageAmount, 1e-9)
	assert.Len(t, s.ExampleTransactions, 3)

	// Perfectly consistent amounts: 0.7*(3/10) + 0.3*1.
	assert.InDelta(t, 0.51, s.Confidence, 1e-9)
}

func TestMiner_BelowFrequencyThreshold(t *testing.T) {
	m := NewMiner(DefaultConfig())

	suggestions := m.GenerateSuggestions([]model.Transaction{
		uncategorized("1", "OXXO 123", -10.00),
		uncategorized("2", "OXXO 456", -10.00),
	})

	assert.Empty(t, suggestions)
}

func TestMiner_SkipsConfidentlyCategorized(t *testing.T) {
	m := NewMiner(DefaultConfig())
	conf := 0.9

	categorized := make([]model.Transaction, 0, 5)
	for i := 0; i < 5; i++ {
		txn := uncategorized(fmt.Sprintf("%d", i), "STARBUCKS #1", -5)
		txn.Category = "Food & Dining"
		txn.Confidence = &conf
		categorized = append(categorized, txn)
	}

	assert.Empty(t, m.GenerateSuggestions(categorized))
}

func TestMiner_IncludesLowConfidenceCategorized(t *testing.T) {
	m := NewMiner(DefaultConfig())
	low := 0.3

	txns := make([]model.Transaction, 0, 3)
	for i := 0; i < 3; i++ {
		txn := uncategorized(fmt.Sprintf("%d", i), "OXXO 1", -10)
		txn.Category = "Groceries"
		txn.Confidence = &low
		txns = append(txns, txn)
	}

	suggestions := m.GenerateSuggestions(txns)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "OXXO", suggestions[0].MerchantPattern)
}

func TestMiner_ExamplesCapped(t *testing.T) {
	m := NewMiner(DefaultConfig())

	txns := make([]model.Transaction, 0, 12)
	for i := 0; i < 12; i++ {
		txns = append(txns, uncategorized(fmt.Sprintf("%d", i), "OXXO 9", -10))
	}

	suggestions := m.GenerateSuggestions(txns)
	require.Len(t, suggestions, 1)
	assert.Len(t, suggestions[0].ExampleTransactions, model.MaxSuggestionExamples)
	assert.Equal(t, 12, suggestions[0].TransactionCount)
}

func TestMiner_ConfidenceRewardsConsistency(t *testing.T) {
	m := NewMiner(DefaultConfig())

	consistent := m.GenerateSuggestions([]model.Transaction{
		uncategorized("1", "OXXO 1", -10),
		uncategorized("2", "OXXO 2", -10),
		uncategorized("3", "OXXO 3", -10),
	})
	erratic := m.GenerateSuggestions([]model.Transaction{
		uncategorized("1", "OXXO 1", -1),
		uncategorized("2", "OXXO 2", -50),
		uncategorized("3", "OXXO 3", -400),
	})

	require.Len(t, consistent, 1)
	require.Len(t, erratic, 1)
	assert.Greater(t, consistent[0].Confidence, erratic[0].Confidence)
	assert.GreaterOrEqual(t, erratic[0].Confidence, 0.0)
	assert.LessOrEqual(t, consistent[0].Confidence, 1.0)
}

func TestMiner_SortedByConfidenceDescending(t *testing.T) {
	m := NewMiner(DefaultConfig())

	var txns []model.Transaction
	for i := 0; i < 3; i++ {
		txns = append(txns, uncategorized(fmt.Sprintf("a%d", i), "OXXO 1", -10))
	}
	for i := 0; i < 8; i++ {
		txns = append(txns, uncategorized(fmt.Sprintf("b%d", i), "STARBUCKS #9", -5))
	}

	suggestions := m.GenerateSuggestions(txns)
	require.Len(t, suggestions, 2)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Confidence, suggestions[i].Confidence)
	}
	assert.Equal(t, "STARBUCKS", suggestions[0].MerchantPattern)
}

func TestMiner_CategoryHeuristics(t *testing.T) {
	tests := []struct {
		desc     string
		category string
		amount   float64
	}{
		{"STARBUCKS #1", "Food & Dining", -5},
		{"UBER 99", "Transportation", -18},
		{"NETFLIX STREAM", "Subscriptions", -15.49},
		{"OXXO 1", "Groceries", -10},
		{"ACME PAYROLL RUN", "Salary", 2500},     // positive, large
		{"SMALLCO REBATE", "Income", 20},         // positive, small
		{"BIGLANDLORD", "Housing", -1500},        // negative, large
		{"MYSTERYVEND", "Shopping", -150},        // negative, medium
		{"TINYVENDOR", "Food & Dining", -7.25},   // negative, small
	}

	m := NewMiner(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var txns []model.Transaction
			for i := 0; i < 3; i++ {
				txns = append(txns, uncategorized(fmt.Sprintf("%d", i), tt.desc, tt.amount))
			}
			suggestions := m.GenerateSuggestions(txns)
			require.Len(t, suggestions, 1)
			assert.Equal(t, tt.category, suggestions[0].SuggestedCategory)
		})
	}
}

func TestMiner_BatchedEqualsUnbatched(t *testing.T) {
	// Well above the chunk size, with groups straddling chunk boundaries.
	var txns []model.Transaction
	for i := 0; i < 1250; i++ {
		var desc string
		var amount float64
		switch i % 5 {
		case 0:
			desc = fmt.Sprintf("OXXO %d", i)
			amount = -10
		case 1:
			desc = fmt.Sprintf("STARBUCKS #%d", i)
			amount = -5.50
		case 2:
			desc = fmt.Sprintf("UBER %d", i)
			amount = -18 - float64(i%7)
		case 3:
			desc = "RARE VENDOR ONCE" // identical token recurring across every chunk
			amount = -3
		default:
			desc = fmt.Sprintf("WALMART %d", i)
			amount = -60
		}
		txns = append(txns, uncategorized(fmt.Sprintf("t%d", i), desc, amount))
	}

	batched := NewMiner(Config{MinFrequency: 3, ChunkSize: 500}).GenerateSuggestions(txns)
	unbatched := NewMiner(Config{MinFrequency: 3, ChunkSize: len(txns) + 1}).GenerateSuggestions(txns)

	require.Equal(t, len(unbatched), len(batched))
	for i := range unbatched {
		assert.Equal(t, unbatched[i].MerchantPattern, batched[i].MerchantPattern)
		assert.Equal(t, unbatched[i].TransactionCount, batched[i].TransactionCount)
		assert.InDelta(t, unbatched[i].AverageAmount, batched[i].AverageAmount, 1e-9)
		assert.InDelta(t, unbatched[i].Confidence, batched[i].Confidence, 1e-9)
		assert.Equal(t, unbatched[i].ExampleTransactions, batched[i].ExampleTransactions)
	}
}

func TestSuggestion_ToCategoryRule(t *testing.T) {
	s := model.RuleSuggestion{
		MerchantPattern:     "OXXO",
		SuggestedCategory:   "Groceries",
		SuggestedCategoryID: model.CategoryIDGroceries,
		TransactionCount:    3,
		AverageAmount:       -10,
		Confidence:          0.51,
	}

	rule := s.ToCategoryRule()
	assert.Equal(t, "OXXO", rule.MerchantContains)
	assert.Equal(t, model.CategoryIDGroceries, rule.CategoryID)
	require.NotNil(t, rule.AmountSign)
	assert.Equal(t, model.AmountSignNegative, *rule.AmountSign)
	assert.True(t, rule.IsActive)
	assert.True(t, rule.IsRecurring)

	// Priority = clamp(round(confidence*100), 70, 90).
	assert.Equal(t, 70, rule.Priority)

	s.Confidence = 0.97
	s.AverageAmount = 2500
	rule = s.ToCategoryRule()
	assert.Equal(t, 90, rule.Priority)
	assert.Equal(t, model.AmountSignPositive, *rule.AmountSign)

	s.Confidence = 0.8
	rule = s.ToCategoryRule()
	assert.Equal(t, int(math.Round(0.8*100)), rule.Priority)
}
