package model

import "math"

// MaxSuggestionExamples bounds the sample transactions carried by a suggestion.
const MaxSuggestionExamples = 5

// RuleSuggestion is an automatically mined candidate rule derived from
// recurring uncategorized transactions.
type RuleSuggestion struct {
	MerchantPattern     string
	SuggestedCategory   string
	ExampleTransactions []Transaction
	SuggestedCategoryID int
	TransactionCount    int
	AverageAmount       float64
	Confidence          float64
}

// ToCategoryRule converts a mined suggestion into a persistable rule. The
// amount sign is inferred from the average amount, and priority is derived
// from confidence, clamped to the suggestion band [70, 90] so mined rules
// never outrank curated system rules.
func (s *RuleSuggestion) ToCategoryRule() CategoryRule {
	sign := AmountSignNegative
	if s.AverageAmount > 0 {
		sign = AmountSignPositive
	}

	priority := int(math.Round(s.Confidence * 100))
	if priority < 70 {
		priority = 70
	}
	if priority > 90 {
		priority = 90
	}

	return CategoryRule{
		Name:             "Suggested: " + s.MerchantPattern,
		MerchantContains: s.MerchantPattern,
		CategoryID:       s.SuggestedCategoryID,
		AmountSign:       &sign,
		Priority:         priority,
		Confidence:       s.Confidence,
		IsActive:         true,
		IsRecurring:      true,
	}
}
