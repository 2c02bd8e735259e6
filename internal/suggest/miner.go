package suggest

import (
	"math"
	"sort"

	"github.com/ledgersieve/ledgersieve/internal/model"
)

// Config holds mining parameters.
type Config struct {
	// MinFrequency is the smallest group size that yields a suggestion.
	MinFrequency int
	// ChunkSize bounds how many transactions are grouped at once. Chunking
	// only limits peak memory; it never changes the output.
	ChunkSize int
}

// DefaultConfig returns the default mining parameters.
func DefaultConfig() Config {
	return Config{
		MinFrequency: 3,
		ChunkSize:    500,
	}
}

// Miner derives rule suggestions from recurring uncategorized transactions.
type Miner struct {
	cfg Config
}

// NewMiner creates a miner with the given configuration, filling in defaults
// for unset fields.
func NewMiner(cfg Config) *Miner {
	def := DefaultConfig()
	if cfg.MinFrequency <= 0 {
		cfg.MinFrequency = def.MinFrequency
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = def.ChunkSize
	}
	return &Miner{cfg: cfg}
}

// GenerateSuggestions mines the batch for recurring merchant tokens among
// transactions still needing categorization and returns suggestions sorted by
// descending confidence. Empty or fully-filtered input yields an empty slice.
func (m *Miner) GenerateSuggestions(transactions []model.Transaction) []model.RuleSuggestion {
	candidates := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.NeedsCategorization() {
			candidates = append(candidates, t)
		}
	}

	// Group in fixed-size chunks and merge before the frequency filter, so
	// chunked and unchunked runs produce identical groups.
	groups := make(map[string][]model.Transaction)
	for start := 0; start < len(candidates); start += m.cfg.ChunkSize {
		end := start + m.cfg.ChunkSize
		if end > len(candidates) {
			end = len(candidates)
		}
		for token, txns := range groupByToken(candidates[start:end]) {
			groups[token] = append(groups[token], txns...)
		}
	}

	suggestions := make([]model.RuleSuggestion, 0, len(groups))
	for token, txns := range groups {
		if len(txns) < m.cfg.MinFrequency {
			continue
		}
		suggestions = append(suggestions, buildSuggestion(token, txns))
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].MerchantPattern < suggestions[j].MerchantPattern
	})

	return suggestions
}

func groupByToken(transactions []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, t := range transactions {
		token := DeriveToken(t.Description)
		if token == "" {
			continue
		}
		groups[token] = append(groups[token], t)
	}
	return groups
}

func buildSuggestion(token string, txns []model.Transaction) model.RuleSuggestion {
	var sum float64
	for _, t := range txns {
		sum += t.Amount
	}
	average := sum / float64(len(txns))

	examples := txns
	if len(examples) > model.MaxSuggestionExamples {
		examples = examples[:model.MaxSuggestionExamples]
	}

	categoryID, category := suggestCategory(token, average)

	return model.RuleSuggestion{
		MerchantPattern:     token,
		TransactionCount:    len(txns),
		SuggestedCategory:   category,
		SuggestedCategoryID: categoryID,
		AverageAmount:       average,
		ExampleTransactions: append([]model.Transaction(nil), examples...),
		Confidence:          confidence(txns),
	}
}

// confidence rewards frequency and amount consistency jointly:
// 0.7 * min(1, count/10) + 0.3 * clamp(1 - stdev(|amount|)/mean(|amount|), 0, 1).
func confidence(txns []model.Transaction) float64 {
	frequency := float64(len(txns)) / 10
	if frequency > 1 {
		frequency = 1
	}

	var sum float64
	for _, t := range txns {
		sum += math.Abs(t.Amount)
	}
	mean := sum / float64(len(txns))

	consistency := 0.0
	if mean > 0 {
		var variance float64
		for _, t := range txns {
			d := math.Abs(t.Amount) - mean
			variance += d * d
		}
		variance /= float64(len(txns))
		consistency = 1 - math.Sqrt(variance)/mean
		if consistency < 0 {
			consistency = 0
		}
		if consistency > 1 {
			consistency = 1
		}
	}

	return 0.7*frequency + 0.3*consistency
}
