// Package rules implements priority-ordered declarative categorization rules
// and their evaluation against transactions.
package rules

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/merchant"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

// Matcher evaluates transactions against a fixed snapshot of rules. Rules are
// held in descending priority order (stable on declaration order for ties),
// and the first active matching rule wins, so evaluation is deterministic for
// identical inputs.
type Matcher struct {
	compiledRegex map[int]*regexp.Regexp
	rules         []model.CategoryRule
}

// NewMatcher builds a matcher over a priority-sorted rule snapshot. Regex
// conditions are compiled once; a rule with an invalid pattern degrades to
// never matching and is logged, rather than failing the batch.
func NewMatcher(snapshot []model.CategoryRule) *Matcher {
	m := &Matcher{
		rules:         snapshot,
		compiledRegex: make(map[int]*regexp.Regexp),
	}

	for _, rule := range snapshot {
		if rule.RegexPattern == "" {
			continue
		}
		re, err := common.CompileInsensitive(rule.RegexPattern)
		if err != nil {
			common.LogError(err, "invalid rule regex, rule will never match", common.Fields{
				"rule":    rule.Name,
				"rule_id": rule.ID,
				"pattern": rule.RegexPattern,
			})
			continue
		}
		m.compiledRegex[rule.ID] = re
	}

	return m
}

// Classify returns the match result of the first (highest-priority) active
// rule that matches the transaction, or nil when no rule matches. The
// returned confidence is the rule's own assigned confidence.
func (m *Matcher) Classify(txn model.Transaction) *model.MatchResult {
	for i := range m.rules {
		rule := &m.rules[i]
		if !rule.IsActive {
			continue
		}
		if m.Matches(rule, txn) {
			return &model.MatchResult{
				RuleID:     rule.ID,
				RuleName:   rule.Name,
				CategoryID: rule.CategoryID,
				Confidence: rule.Confidence,
			}
		}
	}
	return nil
}

// Matches reports whether every set condition of the rule holds for the
// transaction. Unset conditions are ignored. IsRecurring is a mining-time
// hint and is never evaluated here.
func (m *Matcher) Matches(rule *model.CategoryRule, txn model.Transaction) bool {
	if rule.MerchantExact != "" {
		token := merchant.Normalize(txn.Description)
		if !strings.EqualFold(rule.MerchantExact, token) {
			return false
		}
	}

	if rule.MerchantContains != "" &&
		!containsFold(txn.Description, rule.MerchantContains) {
		return false
	}

	if rule.DescriptionContains != "" &&
		!containsFold(txn.Description, rule.DescriptionContains) {
		return false
	}

	if rule.RegexPattern != "" {
		re, ok := m.compiledRegex[rule.ID]
		if !ok || !re.MatchString(txn.Description) {
			return false
		}
	}

	// Amount bounds are inclusive and apply to the absolute amount; the sign
	// is expressed only through AmountSign.
	abs := math.Abs(txn.Amount)
	if rule.AmountMin != nil && abs < *rule.AmountMin {
		return false
	}
	if rule.AmountMax != nil && abs > *rule.AmountMax {
		return false
	}

	if rule.AmountSign != nil && !signMatches(*rule.AmountSign, txn.Amount) {
		return false
	}

	if rule.AccountType != "" && !strings.EqualFold(rule.AccountType, txn.AccountType) {
		return false
	}

	if len(rule.DaysOfWeek) > 0 && !weekdayIn(rule.DaysOfWeek, txn.Date.Weekday()) {
		return false
	}

	return true
}

// Rules exposes the matcher's snapshot, in evaluation order.
func (m *Matcher) Rules() []model.CategoryRule {
	return m.rules
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// signMatches tests the amount against the required sign. Zero amounts match
// neither sign.
func signMatches(sign model.AmountSign, amount float64) bool {
	switch sign {
	case model.AmountSignPositive:
		return amount > 0
	case model.AmountSignNegative:
		return amount < 0
	}
	return false
}

func weekdayIn(days []time.Weekday, day time.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
