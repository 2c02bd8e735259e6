// Package suggest mines recurring uncategorized transactions and proposes
// new categorization rules with computed confidence.
package suggest

import (
	"regexp"
	"strings"
)

// brandPrefixes maps common statement abbreviations to the brand token they
// stand for, so "MCD #4410" and "MCDONALDS 221" group together.
var brandPrefixes = map[string]string{
	"MCD":       "MCDONALDS",
	"MCDONALD":  "MCDONALDS",
	"AMZN":      "AMAZON",
	"SBUX":      "STARBUCKS",
	"STARBUCK":  "STARBUCKS",
	"TGT":       "TARGET",
	"WM":        "WALMART",
	"WALMART":   "WALMART",
	"WHOLEFDS":  "WHOLE FOODS",
	"NFLX":      "NETFLIX",
	"COSTCO":    "COSTCO",
	"CHEVRON":   "CHEVRON",
	"DUNKIN":    "DUNKIN",
	"WALGREEN":  "WALGREENS",
	"SAFEWAY":   "SAFEWAY",
	"KROGER":    "KROGER",
	"CVS":       "CVS",
	"UBR":       "UBER",
	"LYFT":      "LYFT",
	"SQ":        "SQUARE",
	"PP":        "PAYPAL",
	"GOOG":      "GOOGLE",
	"MSFT":      "MICROSOFT",
	"SPLK":      "SPOTIFY",
	"DD":        "DOORDASH",
	"IKEA":      "IKEA",
	"KFC":       "KFC",
	"BP":        "BP",
	"7-ELEVEN":  "7 ELEVEN",
	"SEVENELEV": "7 ELEVEN",
}

// shortBrands are recognized tokens allowed below the normal minimum length.
var shortBrands = map[string]bool{
	"BP":  true,
	"CVS": true,
	"KFC": true,
	"H&M": true,
}

// genericTerms never form a useful merchant pattern on their own.
var genericTerms = map[string]bool{
	"PAYMENT":    true,
	"TRANSFER":   true,
	"DEPOSIT":    true,
	"WITHDRAWAL": true,
	"FEE":        true,
	"CHARGE":     true,
}

var (
	storeNumberToken = regexp.MustCompile(`#\d+`)
	longNumericID    = regexp.MustCompile(`\b\d{8,}\b`)
	dateLike         = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}(/\d{2,4})?|\d{4}-\d{2}-\d{2})\b`)
	trailingState    = regexp.MustCompile(`\s[A-Z]{2}$`)
	companySuffix    = regexp.MustCompile(`\b(INC|LLC|CORP|CO|LTD|COMPANY)\b\.?`)
	dotComTail       = regexp.MustCompile(`\.COM\S*.*$`)
)

// DeriveToken reduces a raw description to a coarse merchant token suitable
// for grouping. It returns "" when no stable token can be extracted.
func DeriveToken(description string) string {
	s := strings.ToUpper(strings.TrimSpace(description))
	if s == "" {
		return ""
	}

	// Payment processors append the payee after an asterisk.
	if i := strings.Index(s, "*"); i >= 0 {
		s = s[:i]
	}

	s = dotComTail.ReplaceAllString(s, "")
	s = storeNumberToken.ReplaceAllString(s, " ")
	s = longNumericID.ReplaceAllString(s, " ")
	s = dateLike.ReplaceAllString(s, " ")
	s = companySuffix.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = trailingState.ReplaceAllString(s, "")

	fields := strings.Fields(s)
	// Drop residual pure-number tokens left by store and reference IDs.
	words := fields[:0]
	for _, f := range fields {
		if isNumeric(f) {
			continue
		}
		words = append(words, f)
	}
	if len(words) == 0 {
		return ""
	}

	first := strings.Trim(words[0], ".-")
	if canonical, ok := brandPrefixes[first]; ok {
		return canonical
	}

	token := first
	// A short leading word alone rarely identifies a merchant; pull in the
	// second word when one exists.
	if len(first) < 4 && len(words) > 1 {
		token = first + " " + strings.Trim(words[1], ".-")
	}

	minLen := 3
	if shortBrands[token] {
		minLen = 2
	}
	if len(token) < minLen {
		return ""
	}
	if genericTerms[token] {
		return ""
	}

	return token
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
