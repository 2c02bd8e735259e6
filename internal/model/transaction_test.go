package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_NeedsCategorization(t *testing.T) {
	high := 0.9
	low := 0.3

	tests := []struct {
		name string
		txn  Transaction
		want bool
	}{
		{"empty category", Transaction{Category: ""}, true},
		{"uncategorized label", Transaction{Category: UncategorizedName}, true},
		{"categorized no confidence", Transaction{Category: "Groceries"}, true},
		{"categorized low confidence", Transaction{Category: "Groceries", Confidence: &low}, true},
		{"categorized high confidence", Transaction{Category: "Groceries", Confidence: &high}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.NeedsCategorization())
		})
	}
}

func TestTransaction_GenerateHash(t *testing.T) {
	txn := Transaction{
		Date:        time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		Description: "STARBUCKS #1234",
		AccountType: "checking",
		Amount:      -5.75,
	}

	first := txn.GenerateHash()
	assert.Equal(t, first, txn.GenerateHash())
	assert.Len(t, first, 64)

	other := txn
	other.Amount = -5.76
	assert.NotEqual(t, first, other.GenerateHash())
}

func TestSystemCategories(t *testing.T) {
	categories := SystemCategories()
	assert.Len(t, categories, SystemCategoryMaxID)

	seen := make(map[int]bool)
	for _, c := range categories {
		assert.True(t, c.IsSystem, c.Name)
		assert.True(t, c.IsActive, c.Name)
		assert.False(t, seen[c.ID], c.Name)
		seen[c.ID] = true
		assert.LessOrEqual(t, c.ID, SystemCategoryMaxID)
		assert.Positive(t, c.ID)
	}
}
