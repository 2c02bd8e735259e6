package model

import "time"

// AmountSign constrains a rule to one side of the ledger.
type AmountSign string

// Amount sign constants. A zero amount matches neither sign.
const (
	AmountSignPositive AmountSign = "positive"
	AmountSignNegative AmountSign = "negative"
)

// CategoryRule is a declarative, priority-ordered condition set mapping
// transactions to a category. All set conditions must hold for the rule to
// match (AND semantics); unset conditions are ignored.
//
// AmountMin and AmountMax are inclusive bounds on the absolute transaction
// amount. The sign of the amount is expressed only through AmountSign, never
// through the bounds.
type CategoryRule struct {
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
	LastMatchDate       *time.Time            `json:"last_match_date,omitempty"`
	AmountMin           *float64              `json:"amount_min,omitempty"`
	AmountMax           *float64              `json:"amount_max,omitempty"`
	AmountSign          *AmountSign           `json:"amount_sign,omitempty"`
	Name                string                `json:"name"`
	MerchantContains    string                `json:"merchant_contains,omitempty"`
	MerchantExact       string                `json:"merchant_exact,omitempty"`
	DescriptionContains string                `json:"description_contains,omitempty"`
	RegexPattern        string                `json:"regex_pattern,omitempty"`
	AccountType         string                `json:"account_type,omitempty"`
	DaysOfWeek          []time.Weekday        `json:"days_of_week,omitempty"`
	ID                  int                   `json:"id"`
	CategoryID          int                   `json:"category_id"`
	Priority            int                   `json:"priority"`
	UseCount            int                   `json:"use_count"`
	Confidence          float64               `json:"confidence"`
	IsActive            bool                  `json:"is_active"`
	IsSystem            bool                  `json:"is_system"`
	IsRecurring         bool                  `json:"is_recurring"`
}

// HasConditions reports whether any matchable condition is set. A rule with
// no conditions would match every transaction and is rejected at store time.
func (r *CategoryRule) HasConditions() bool {
	return r.MerchantContains != "" ||
		r.MerchantExact != "" ||
		r.DescriptionContains != "" ||
		r.RegexPattern != "" ||
		r.AccountType != "" ||
		r.AmountMin != nil ||
		r.AmountMax != nil ||
		r.AmountSign != nil ||
		len(r.DaysOfWeek) > 0
}

// MatchResult is the outcome of evaluating a transaction against a rule set.
type MatchResult struct {
	RuleName   string
	RuleID     int
	CategoryID int
	Confidence float64
}
