// Package catalog loads user-maintained merchant and rule definitions from
// YAML files and merges them with the built-in defaults at startup.
package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ledgersieve/ledgersieve/internal/common"
	"github.com/ledgersieve/ledgersieve/internal/model"
)

// RuleSpec is the YAML form of a user rule. Categories are referenced by
// name and resolved against the registry when the file is applied.
type RuleSpec struct {
	AmountMin           *float64 `yaml:"amount_min,omitempty"`
	AmountMax           *float64 `yaml:"amount_max,omitempty"`
	Name                string   `yaml:"name"`
	Category            string   `yaml:"category"`
	MerchantContains    string   `yaml:"merchant_contains,omitempty"`
	MerchantExact       string   `yaml:"merchant_exact,omitempty"`
	DescriptionContains string   `yaml:"description_contains,omitempty"`
	RegexPattern        string   `yaml:"regex_pattern,omitempty"`
	AmountSign          string   `yaml:"amount_sign,omitempty"`
	AccountType         string   `yaml:"account_type,omitempty"`
	DaysOfWeek          []int    `yaml:"days_of_week,omitempty"`
	Priority            int      `yaml:"priority"`
	Confidence          float64  `yaml:"confidence"`
}

// File is the top-level YAML document.
type File struct {
	Merchants []model.Merchant `yaml:"merchants,omitempty"`
	Rules     []RuleSpec       `yaml:"rules,omitempty"`
}

// Load parses a catalog file. A missing file is not an error; it yields an
// empty document so defaults apply unchanged.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return &f, nil
}

// ResolveRules converts the file's rule specs into model rules, resolving
// category names against the registry's category list.
func (f *File) ResolveRules(categories []model.Category) ([]model.CategoryRule, error) {
	byName := make(map[string]int, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	rules := make([]model.CategoryRule, 0, len(f.Rules))
	for _, spec := range f.Rules {
		categoryID, ok := byName[spec.Category]
		if !ok {
			return nil, fmt.Errorf("%w: rule %q references unknown category %q",
				common.ErrInvalidConfig, spec.Name, spec.Category)
		}

		rule := model.CategoryRule{
			Name:                spec.Name,
			CategoryID:          categoryID,
			MerchantContains:    spec.MerchantContains,
			MerchantExact:       spec.MerchantExact,
			DescriptionContains: spec.DescriptionContains,
			RegexPattern:        spec.RegexPattern,
			AmountMin:           spec.AmountMin,
			AmountMax:           spec.AmountMax,
			AccountType:         spec.AccountType,
			Priority:            spec.Priority,
			Confidence:          spec.Confidence,
			IsActive:            true,
		}

		switch spec.AmountSign {
		case "":
		case string(model.AmountSignPositive), string(model.AmountSignNegative):
			sign := model.AmountSign(spec.AmountSign)
			rule.AmountSign = &sign
		default:
			return nil, fmt.Errorf("%w: rule %q has invalid amount sign %q",
				common.ErrInvalidConfig, spec.Name, spec.AmountSign)
		}

		for _, d := range spec.DaysOfWeek {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("%w: rule %q has invalid weekday %d",
					common.ErrInvalidConfig, spec.Name, d)
			}
			rule.DaysOfWeek = append(rule.DaysOfWeek, time.Weekday(d))
		}

		rules = append(rules, rule)
	}
	return rules, nil
}
