// Package report accumulates diagnostics for a single classification run and
// renders them as a plain-text, line-oriented report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ledgersieve/ledgersieve/internal/model"
)

// Level selects how much detail Render includes.
type Level int

// Output levels.
const (
	LevelSummary Level = iota
	LevelDetailed
	LevelVerbose
)

// maxSamples bounds the stored success and failure examples.
const maxSamples = 10

type sample struct {
	description string
	detail      string
	amount      float64
	confidence  float64
}

// Report is a single-writer, single-pass accumulator over one classification
// run. Record every transaction, then the success or failure outcome, call
// Finalize once, and render.
type Report struct {
	startTime       time.Time
	endTime         time.Time
	categoryCounts  map[string]int
	failurePatterns map[string]int
	successSamples  []sample
	failureSamples  []sample
	total           int
	succeeded       int
	failed          int
	highConfidence  int
	medConfidence   int
	lowConfidence   int
	finalized       bool
}

// New creates an empty report and starts its clock.
func New() *Report {
	return &Report{
		startTime:       time.Now(),
		categoryCounts:  make(map[string]int),
		failurePatterns: make(map[string]int),
	}
}

// RecordTransaction counts a transaction entering the run.
func (r *Report) RecordTransaction() {
	r.total++
}

// RecordSuccess records a classified transaction with its category and the
// confidence of the matching rule.
func (r *Report) RecordSuccess(txn model.Transaction, category string, confidence float64) {
	r.succeeded++
	r.categoryCounts[category]++

	switch {
	case confidence > 0.8:
		r.highConfidence++
	case confidence >= 0.5:
		r.medConfidence++
	default:
		r.lowConfidence++
	}

	if len(r.successSamples) < maxSamples {
		r.successSamples = append(r.successSamples, sample{
			description: txn.Description,
			detail:      category,
			amount:      txn.Amount,
			confidence:  confidence,
		})
	}
}

// RecordFailure records a transaction no rule claimed, bucketed by a coarse
// failure pattern derived from its description.
func (r *Report) RecordFailure(txn model.Transaction, reason string) {
	r.failed++
	r.failurePatterns[failurePattern(txn.Description)]++

	if len(r.failureSamples) < maxSamples {
		r.failureSamples = append(r.failureSamples, sample{
			description: txn.Description,
			detail:      reason,
			amount:      txn.Amount,
		})
	}
}

// Finalize stops the clock. Further recording is a caller bug; the report
// renders whatever was accumulated.
func (r *Report) Finalize() {
	if !r.finalized {
		r.endTime = time.Now()
		r.finalized = true
	}
}

// Elapsed returns the processing time of the run.
func (r *Report) Elapsed() time.Duration {
	end := r.endTime
	if !r.finalized {
		end = time.Now()
	}
	return end.Sub(r.startTime)
}

// failurePattern classifies an unmatched description into a coarse bucket.
func failurePattern(description string) string {
	d := strings.ToUpper(description)
	switch {
	case strings.Contains(d, "ATM") || strings.Contains(d, "CASH"):
		return "atm/cash"
	case strings.Contains(d, "FEE"):
		return "fees"
	case strings.Contains(d, "TRANSFER"):
		return "transfers"
	case strings.Contains(d, "PAYMENT"):
		return "payments"
	case strings.Contains(d, "INTEREST"):
		return "interest"
	case strings.Contains(d, "DEPOSIT"):
		return "deposits"
	}

	words := strings.Fields(d)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.ToLower(strings.Join(words, " "))
}

// Render produces the plain-text report at the requested level.
func (r *Report) Render(level Level) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Categorization Report\n")
	fmt.Fprintf(&b, "=====================\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Processing time: %s\n\n", r.Elapsed().Round(time.Millisecond))

	fmt.Fprintf(&b, "Transactions: %d total, %d categorized, %d uncategorized\n",
		r.total, r.succeeded, r.failed)
	if r.total > 0 {
		fmt.Fprintf(&b, "Success rate: %.1f%%\n", float64(r.succeeded)/float64(r.total)*100)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Confidence buckets\n")
	fmt.Fprintf(&b, "  high   (>0.8):    %d\n", r.highConfidence)
	fmt.Fprintf(&b, "  medium (0.5-0.8): %d\n", r.medConfidence)
	fmt.Fprintf(&b, "  low    (<0.5):    %d\n\n", r.lowConfidence)

	if len(r.categoryCounts) > 0 {
		fmt.Fprintf(&b, "Per-category counts\n")
		for _, kv := range sortedCounts(r.categoryCounts) {
			fmt.Fprintf(&b, "  %-24s %d\n", kv.key, kv.count)
		}
		b.WriteString("\n")
	}

	if len(r.failurePatterns) > 0 {
		fmt.Fprintf(&b, "Failure patterns\n")
		for _, kv := range sortedCounts(r.failurePatterns) {
			fmt.Fprintf(&b, "  %-24s %d\n", kv.key, kv.count)
		}
		b.WriteString("\n")
	}

	if level >= LevelDetailed && len(r.failureSamples) > 0 {
		fmt.Fprintf(&b, "Sample uncategorized transactions\n")
		for _, s := range r.failureSamples {
			fmt.Fprintf(&b, "  %-40s %10.2f  %s\n", s.description, s.amount, s.detail)
		}
		b.WriteString("\n")
	}

	if level >= LevelVerbose && len(r.successSamples) > 0 {
		fmt.Fprintf(&b, "Sample categorized transactions\n")
		for _, s := range r.successSamples {
			fmt.Fprintf(&b, "  %-40s %10.2f  %s (%.2f)\n",
				s.description, s.amount, s.detail, s.confidence)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WriteFile exports the rendered report to a timestamped file under dir and
// returns the written path.
func (r *Report) WriteFile(dir string, level Level) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	name := fmt.Sprintf("categorization-report-%s.txt", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(r.Render(level)), 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

type keyCount struct {
	key   string
	count int
}

func sortedCounts(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{key: k, count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}
