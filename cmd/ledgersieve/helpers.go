package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/ledgersieve/ledgersieve/internal/catalog"
	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/config"
	"github.com/ledgersieve/ledgersieve/internal/engine"
	"github.com/ledgersieve/ledgersieve/internal/merchant"
	"github.com/ledgersieve/ledgersieve/internal/model"
	"github.com/ledgersieve/ledgersieve/internal/rules"
	"github.com/ledgersieve/ledgersieve/internal/service"
	"github.com/ledgersieve/ledgersieve/internal/storage"
	"github.com/ledgersieve/ledgersieve/internal/suggest"
)

// backend aggregates the persistence collaborators the commands consume.
type backend interface {
	service.CategoryRegistry
	service.RuleRepository
	service.MerchantCatalog
}

// openStorage opens (and migrates) the database, seeding system data on
// first run.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("storage.path"))
	if dbPath == "" {
		dbPath = filepath.Join(config.DefaultDataDir(), "ledgersieve.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open database "+dbPath, err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("failed to migrate database", err)
	}
	if err := store.SeedSystemCategories(ctx, model.SystemCategories(), rules.SystemRules()); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("failed to seed system categories", err)
	}
	return store, nil
}

// buildEngine assembles the classification pipeline: persisted categories and
// rules, the default merchant catalog extended with persisted and YAML
// custom entries, and the suggestion miner.
func buildEngine(ctx context.Context, st backend) (*engine.Engine, error) {
	categories, err := st.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, common.ErrNoCategories
	}

	persisted, err := st.Rules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	catalogPath := config.ExpandPath(viper.GetString("catalog.path"))
	userFile, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	userRules, err := userFile.ResolveRules(categories)
	if err != nil {
		return nil, err
	}

	ruleStore, err := rules.NewStore(append(persisted, userRules...))
	if err != nil {
		return nil, err
	}

	entries := merchant.DefaultCatalog()
	custom, err := st.CustomMerchants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom merchants: %w", err)
	}
	entries = append(entries, custom...)
	entries = append(entries, userFile.Merchants...)
	identifier := merchant.NewIdentifier(entries)

	miner := suggest.NewMiner(suggest.Config{
		MinFrequency: viper.GetInt("suggestions.min_frequency"),
		ChunkSize:    viper.GetInt("suggestions.chunk_size"),
	})

	return engine.New(ruleStore, identifier, miner, categories), nil
}

// transactionRecord is the JSON wire form produced by the external importer.
type transactionRecord struct {
	Confidence  *float64 `json:"confidence,omitempty"`
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	AccountType string   `json:"account_type,omitempty"`
	Category    string   `json:"category,omitempty"`
	Amount      float64  `json:"amount"`
}

// loadTransactions reads importer output: a JSON array of transaction
// records. Dates accept RFC 3339 or plain YYYY-MM-DD.
func loadTransactions(path string) ([]model.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewUserError("failed to read transactions file "+path, err)
	}

	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, common.NewUserError("failed to parse transactions file "+path, err)
	}

	transactions := make([]model.Transaction, 0, len(records))
	for i, r := range records {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		category := r.Category
		if category == "" {
			category = model.UncategorizedName
		}
		transactions = append(transactions, model.Transaction{
			ID:          r.ID,
			Date:        date,
			Description: r.Description,
			AccountType: r.AccountType,
			Category:    category,
			Confidence:  r.Confidence,
			Amount:      r.Amount,
		})
	}
	return transactions, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
