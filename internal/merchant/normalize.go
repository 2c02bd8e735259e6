// Package merchant resolves free-text transaction descriptions to canonical
// merchants through a staged matching pipeline.
package merchant

import (
	"regexp"
	"strings"
)

// businessSuffixes are corporate designators stripped during normalization.
var businessSuffixes = map[string]bool{
	"INC":          true,
	"LLC":          true,
	"CORP":         true,
	"CO":           true,
	"LTD":          true,
	"LP":           true,
	"PLC":          true,
	"COMPANY":      true,
	"CORPORATION":  true,
	"INCORPORATED": true,
	"LIMITED":      true,
}

// usStateCodes covers trailing location tokens like "SEATTLE WA".
var usStateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9 ]+`)
	storeNumber     = regexp.MustCompile(`^#?\d+$`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// Normalize cleans a raw transaction description for comparison: uppercase,
// punctuation removed, business suffixes, store numbers and trailing location
// tokens stripped, whitespace collapsed.
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = nonAlphanumeric.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for i, w := range words {
		if businessSuffixes[w] {
			continue
		}
		if storeNumber.MatchString(w) {
			continue
		}
		// A trailing two-letter state code is a location token, not part of
		// the merchant name.
		if i == len(words)-1 && i > 0 && usStateCodes[w] {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}
