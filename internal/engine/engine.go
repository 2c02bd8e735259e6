// Package engine orchestrates the classification pipeline: rule evaluation,
// merchant identification, suggestion mining and run diagnostics.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/merchant"
	"github.com/ledgersieve/ledgersieve/internal/model"
	"github.com/ledgersieve/ledgersieve/internal/report"
	"github.com/ledgersieve/ledgersieve/internal/rules"
	"github.com/ledgersieve/ledgersieve/internal/suggest"
)

// Classification is the outcome of classifying one transaction.
type Classification struct {
	Category      string
	RuleName      string
	TransactionID string
	CategoryID    int
	RuleID        int
	Confidence    float64
}

// Engine wires the categorization services together. All collaborators are
// injected; the pipeline is synchronous and single-pass, with the context
// checked between transactions only.
type Engine struct {
	store         *rules.Store
	identifier    *merchant.Identifier
	miner         *suggest.Miner
	categoryNames map[int]string
}

// New creates an engine. categories supplies the ID-to-name mapping used to
// label classifications.
func New(store *rules.Store, identifier *merchant.Identifier, miner *suggest.Miner, categories []model.Category) *Engine {
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return &Engine{
		store:         store,
		identifier:    identifier,
		miner:         miner,
		categoryNames: names,
	}
}

// Classify evaluates one transaction against a fresh rule snapshot and
// returns the winning classification, or nil when no rule matches.
func (e *Engine) Classify(txn model.Transaction) *Classification {
	return e.classifyWith(e.store.NewMatcher(), txn)
}

// BatchResult carries the outcome of a batch classification run.
type BatchResult struct {
	Report          *report.Report
	Classifications []Classification
	Unmatched       []model.Transaction
}

// ClassifyBatch classifies a batch against a single rule snapshot, so
// concurrent rule edits never change ordering mid-batch. Unmatched
// transactions keep their default label and are returned for mining.
func (e *Engine) ClassifyBatch(ctx context.Context, transactions []model.Transaction) (*BatchResult, error) {
	if len(transactions) == 0 {
		return nil, common.ErrNoTransactions
	}

	matcher := e.store.NewMatcher()
	rep := report.New()
	result := &BatchResult{Report: rep}

	common.LogInfo("classifying batch", common.Fields{
		"transactions": len(transactions),
		"rules":        len(matcher.Rules()),
	})

	for _, txn := range transactions {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rep.RecordTransaction()

		c := e.classifyWith(matcher, txn)
		if c == nil {
			rep.RecordFailure(txn, "no rule matched")
			result.Unmatched = append(result.Unmatched, txn)
			continue
		}

		rep.RecordSuccess(txn, c.Category, c.Confidence)
		e.store.RecordMatch(c.RuleID, time.Now())
		result.Classifications = append(result.Classifications, *c)
	}

	rep.Finalize()

	common.LogInfo("batch classified", common.Fields{
		"categorized":   len(result.Classifications),
		"uncategorized": len(result.Unmatched),
		"elapsed":       rep.Elapsed().Round(time.Millisecond),
	})
	if len(result.Unmatched) > 0 {
		common.LogWarn("transactions left uncategorized", common.Fields{
			"count": len(result.Unmatched),
		})
	}

	return result, nil
}

func (e *Engine) classifyWith(matcher *rules.Matcher, txn model.Transaction) *Classification {
	m := matcher.Classify(txn)
	if m == nil {
		return nil
	}
	return &Classification{
		TransactionID: txn.ID,
		Category:      e.categoryName(m.CategoryID),
		CategoryID:    m.CategoryID,
		RuleID:        m.RuleID,
		RuleName:      m.RuleName,
		Confidence:    m.Confidence,
	}
}

// IdentifyMerchant resolves a raw description to a catalog merchant.
func (e *Engine) IdentifyMerchant(description string) *model.MerchantMatch {
	return e.identifier.Identify(description)
}

// GenerateSuggestions mines a batch for recurring unclassified merchant
// patterns and proposes new rules.
func (e *Engine) GenerateSuggestions(transactions []model.Transaction) []model.RuleSuggestion {
	return e.miner.GenerateSuggestions(transactions)
}

// RuleStore exposes the engine's rule store.
func (e *Engine) RuleStore() *rules.Store {
	return e.store
}

// Identifier exposes the engine's merchant identifier.
func (e *Engine) Identifier() *merchant.Identifier {
	return e.identifier
}

func (e *Engine) categoryName(id int) string {
	if name, ok := e.categoryNames[id]; ok {
		return name
	}
	return fmt.Sprintf("category-%d", id)
}
