package rules

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

// Store holds the ordered rule collection (system and user rules). Callers
// take a Snapshot before evaluating a batch so concurrent edits never change
// rule ordering mid-batch.
type Store struct {
	rules  []model.CategoryRule
	nextID int
	mu     sync.RWMutex
}

// NewStore creates a store seeded with the given rules, preserving their
// declaration order for priority ties.
func NewStore(rules []model.CategoryRule) (*Store, error) {
	s := &Store{nextID: 1}
	for _, r := range rules {
		if err := s.add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add validates and appends a rule. Rules without any condition or with a
// confidence outside [0,1] are rejected.
func (s *Store) Add(rule model.CategoryRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(rule)
}

func (s *Store) add(rule model.CategoryRule) error {
	if !rule.HasConditions() {
		return fmt.Errorf("%w: rule %q has no conditions", common.ErrInvalidRule, rule.Name)
	}
	if rule.Confidence < 0 || rule.Confidence > 1 {
		return fmt.Errorf("%w: rule %q confidence %.2f outside [0,1]",
			common.ErrInvalidRule, rule.Name, rule.Confidence)
	}
	if rule.CategoryID <= 0 {
		return fmt.Errorf("%w: rule %q has no category", common.ErrInvalidRule, rule.Name)
	}

	if rule.ID == 0 {
		rule.ID = s.nextID
	} else {
		for _, existing := range s.rules {
			if existing.ID == rule.ID {
				return fmt.Errorf("%w: rule ID %d already in use by %q",
					common.ErrDuplicateEntry, rule.ID, existing.Name)
			}
		}
	}
	if rule.ID >= s.nextID {
		s.nextID = rule.ID + 1
	}
	now := time.Now()
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = now
	}
	rule.UpdatedAt = now

	s.rules = append(s.rules, rule)
	return nil
}

// Remove deletes a rule by ID. System rules cannot be removed.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rules {
		if r.ID != id {
			continue
		}
		if r.IsSystem {
			return fmt.Errorf("%w: system rule %q cannot be removed", common.ErrInvalidRule, r.Name)
		}
		s.rules = append(s.rules[:i], s.rules[i+1:]...)
		return nil
	}
	return common.ErrNotFound
}

// Snapshot returns a copy of all rules in evaluation order: descending
// priority, stable on declaration order for equal priorities.
func (s *Store) Snapshot() []model.CategoryRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.CategoryRule, len(s.rules))
	copy(snapshot, s.rules)

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Priority > snapshot[j].Priority
	})

	return snapshot
}

// NewMatcher snapshots the store and builds a matcher over it.
func (s *Store) NewMatcher() *Matcher {
	return NewMatcher(s.Snapshot())
}

// RecordMatch updates hit accounting for a rule after a classification run.
func (s *Store) RecordMatch(id int, when time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID == id {
			s.rules[i].UseCount++
			s.rules[i].LastMatchDate = &when
			return
		}
	}
}

// Len returns the number of stored rules.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// Get returns a rule by ID.
func (s *Store) Get(id int) (model.CategoryRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return model.CategoryRule{}, common.ErrNotFound
}
