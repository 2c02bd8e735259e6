package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

const sampleCatalog = `
merchants:
  - id: oxxo
    canonical_name: OXXO
    category: Groceries
    merchant_type: grocery
    aliases:
      - OXXO GAS
    patterns:
      - '^OXXO\s'

rules:
  - name: Corner store runs
    category: Groceries
    merchant_contains: OXXO
    amount_sign: negative
    amount_max: 50
    days_of_week: [5, 6]
    priority: 72
    confidence: 0.8
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	require.Len(t, f.Merchants, 1)
	m := f.Merchants[0]
	assert.Equal(t, "oxxo", m.ID)
	assert.Equal(t, "OXXO", m.CanonicalName)
	assert.Equal(t, model.MerchantTypeGrocery, m.MerchantType)
	assert.Equal(t, []string{"OXXO GAS"}, m.Aliases)
	assert.Equal(t, []string{`^OXXO\s`}, m.Patterns)

	require.Len(t, f.Rules, 1)
	r := f.Rules[0]
	assert.Equal(t, "Corner store runs", r.Name)
	assert.Equal(t, "negative", r.AmountSign)
	require.NotNil(t, r.AmountMax)
	assert.InDelta(t, 50, *r.AmountMax, 1e-9)
	assert.Equal(t, []int{5, 6}, r.DaysOfWeek)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, f.Merchants)
	assert.Empty(t, f.Rules)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeCatalog(t, "rules: [unclosed"))
	assert.Error(t, err)
}

func TestResolveRules(t *testing.T) {
	f, err := Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	rules, err := f.ResolveRules(model.SystemCategories())
	require.NoError(t, err)
	require.Len(t, rules, 1)

	r := rules[0]
	assert.Equal(t, model.CategoryIDGroceries, r.CategoryID)
	assert.Equal(t, "OXXO", r.MerchantContains)
	require.NotNil(t, r.AmountSign)
	assert.Equal(t, model.AmountSignNegative, *r.AmountSign)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, r.DaysOfWeek)
	assert.True(t, r.IsActive)
	assert.False(t, r.IsSystem)
}

func TestResolveRules_UnknownCategory(t *testing.T) {
	f := &File{Rules: []RuleSpec{{Name: "X", Category: "No Such Category", Priority: 50}}}

	_, err := f.ResolveRules(model.SystemCategories())
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestResolveRules_InvalidSign(t *testing.T) {
	f := &File{Rules: []RuleSpec{{
		Name:       "X",
		Category:   "Groceries",
		AmountSign: "sideways",
	}}}

	_, err := f.ResolveRules(model.SystemCategories())
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestResolveRules_InvalidWeekday(t *testing.T) {
	f := &File{Rules: []RuleSpec{{
		Name:       "X",
		Category:   "Groceries",
		DaysOfWeek: []int{7},
	}}}

	_, err := f.ResolveRules(model.SystemCategories())
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
