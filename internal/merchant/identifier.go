package merchant

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

// aliasEntry pairs an alias with its catalog position. Aliases are scanned in
// catalog declaration order so identification stays deterministic.
type aliasEntry struct {
	alias string
	index int
}

// Identifier resolves raw transaction descriptions to catalog merchants.
//
// Identification runs four short-circuiting stages: exact canonical-name
// match, alias containment, declared-pattern match, then fuzzy scoring over
// the whole catalog. An earlier stage always wins, even over a later
// higher-scoring candidate.
//
// AddCustomMerchant is the single mutating operation; it rebuilds every index
// under the write lock so readers never observe a partially-built index.
type Identifier struct {
	categoryIndex map[string][]int
	catalog       []model.Merchant
	normalized    []string
	aliases       []aliasEntry
	patterns      [][]*regexp.Regexp
	mu            sync.RWMutex
}

// NewIdentifier builds an identifier over the given catalog. Entries with
// invalid declared patterns keep an always-fail matcher for that pattern
// only; the rest of the entry still participates in every stage.
func NewIdentifier(catalog []model.Merchant) *Identifier {
	id := &Identifier{catalog: append([]model.Merchant(nil), catalog...)}
	id.rebuildIndices()
	return id
}

// Identify resolves a raw description to the best merchant match, or nil when
// nothing qualifies. Empty or whitespace-only input returns nil immediately.
func (id *Identifier) Identify(raw string) *model.MerchantMatch {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	norm := Normalize(raw)

	id.mu.RLock()
	defer id.mu.RUnlock()

	if m := id.matchExact(norm); m != nil {
		return m
	}
	if m := id.matchAlias(norm); m != nil {
		return m
	}
	if m := id.matchPattern(raw); m != nil {
		return m
	}
	return id.matchFuzzy(norm)
}

// AddCustomMerchant appends an entry to the catalog and rebuilds all indices.
// It is the exclusive writer; concurrent Identify calls block until the
// rebuilt indices are in place.
func (id *Identifier) AddCustomMerchant(m model.Merchant) error {
	if strings.TrimSpace(m.CanonicalName) == "" {
		return fmt.Errorf("%w: merchant canonical name is required", common.ErrInvalidConfig)
	}

	id.mu.Lock()
	defer id.mu.Unlock()

	id.catalog = append(id.catalog, m)
	id.rebuildIndices()

	common.LogDebug("merchant catalog extended", common.Fields{
		"merchant": m.CanonicalName,
		"entries":  len(id.catalog),
	})
	return nil
}

// Count returns the number of catalog entries.
func (id *Identifier) Count() int {
	id.mu.RLock()
	defer id.mu.RUnlock()
	return len(id.catalog)
}

// MerchantsInCategory returns the catalog entries declared under a category.
func (id *Identifier) MerchantsInCategory(category string) []model.Merchant {
	id.mu.RLock()
	defer id.mu.RUnlock()

	indices := id.categoryIndex[category]
	result := make([]model.Merchant, 0, len(indices))
	for _, i := range indices {
		result = append(result, id.catalog[i])
	}
	return result
}

// rebuildIndices reconstructs every derived structure from the catalog slice.
// Callers must hold the write lock (or own the identifier exclusively).
func (id *Identifier) rebuildIndices() {
	id.normalized = make([]string, len(id.catalog))
	id.aliases = id.aliases[:0]
	id.categoryIndex = make(map[string][]int)
	id.patterns = make([][]*regexp.Regexp, len(id.catalog))

	for i, m := range id.catalog {
		id.normalized[i] = Normalize(m.CanonicalName)
		id.categoryIndex[m.Category] = append(id.categoryIndex[m.Category], i)

		for _, a := range m.Aliases {
			alias := strings.ToUpper(strings.TrimSpace(a))
			if alias == "" {
				continue
			}
			id.aliases = append(id.aliases, aliasEntry{alias: alias, index: i})
		}

		compiled := make([]*regexp.Regexp, len(m.Patterns))
		for j, p := range m.Patterns {
			re, err := common.CompileInsensitive(p)
			if err != nil {
				// A bad declared pattern degrades to an always-fail matcher
				// for that pattern only.
				common.LogError(err, "invalid merchant pattern, disabling", common.Fields{
					"merchant": m.CanonicalName,
					"pattern":  p,
				})
				continue
			}
			compiled[j] = re
		}
		id.patterns[i] = compiled
	}
}

func (id *Identifier) matchExact(norm string) *model.MerchantMatch {
	if norm == "" {
		return nil
	}
	for i, name := range id.normalized {
		if name != "" && name == norm {
			return &model.MerchantMatch{
				Merchant:       &id.catalog[i],
				MatchType:      model.MatchExact,
				MatchedPattern: name,
				Confidence:     1.0,
			}
		}
	}
	return nil
}

// matchAlias scans aliases in catalog declaration order. Confidence is the
// alias length relative to the normalized description (the same string the
// containment test runs against), boosted and capped below an exact match.
func (id *Identifier) matchAlias(norm string) *model.MerchantMatch {
	if norm == "" {
		return nil
	}
	for _, e := range id.aliases {
		if strings.Contains(norm, e.alias) {
			confidence := float64(len(e.alias))/float64(len(norm)) + 0.3
			if confidence > 0.95 {
				confidence = 0.95
			}
			return &model.MerchantMatch{
				Merchant:       &id.catalog[e.index],
				MatchType:      model.MatchAlias,
				MatchedPattern: e.alias,
				Confidence:     confidence,
			}
		}
	}
	return nil
}

func (id *Identifier) matchPattern(raw string) *model.MerchantMatch {
	for i, compiled := range id.patterns {
		for j, re := range compiled {
			if re == nil {
				continue
			}
			if re.MatchString(raw) {
				return &model.MerchantMatch{
					Merchant:       &id.catalog[i],
					MatchType:      model.MatchPattern,
					MatchedPattern: id.catalog[i].Patterns[j],
					Confidence:     0.8,
				}
			}
		}
	}
	return nil
}

func (id *Identifier) matchFuzzy(norm string) *model.MerchantMatch {
	if norm == "" {
		return nil
	}

	bestScore := 0.0
	bestIndex := -1
	bestPartial := false
	for i, name := range id.normalized {
		if name == "" {
			continue
		}
		score, partial := fuzzyScore(norm, name)
		if score > bestScore {
			bestScore = score
			bestIndex = i
			bestPartial = partial
		}
	}

	if bestIndex < 0 || bestScore < fuzzyThreshold {
		return nil
	}

	matchType := model.MatchFuzzy
	if bestPartial {
		matchType = model.MatchPartial
	}
	return &model.MerchantMatch{
		Merchant:       &id.catalog[bestIndex],
		MatchType:      matchType,
		MatchedPattern: id.normalized[bestIndex],
		Confidence:     bestScore,
	}
}
