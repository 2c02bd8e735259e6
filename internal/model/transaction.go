package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction represents a single imported bank transaction. The importer owns
// these records; the categorization core treats them as read-only input.
type Transaction struct {
	Date        time.Time
	Confidence  *float64
	ID          string
	Description string // Raw transaction description
	AccountType string
	Category    string // Current label, UncategorizedName until classified
	Amount      float64
}

// NeedsCategorization reports whether a transaction should be considered by
// the suggestion miner: still uncategorized, or categorized with low or
// unknown confidence.
func (t *Transaction) NeedsCategorization() bool {
	if t.Category == "" || t.Category == UncategorizedName {
		return true
	}
	return t.Confidence == nil || *t.Confidence < 0.5
}

// GenerateHash creates a stable hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.AccountType)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
