package merchant

import "strings"

// fuzzyThreshold is the minimum composite score a fuzzy candidate must reach.
const fuzzyThreshold = 0.7

// fuzzyScore computes the composite similarity between a normalized
// description and a normalized canonical name. The score is the maximum of
// four independent measures, each in [0,1].
func fuzzyScore(desc, name string) (score float64, partial bool) {
	if desc == "" || name == "" {
		return 0, false
	}

	containment := containmentRatio(desc, name)
	overlap := tokenOverlap(desc, name)
	jaccard := jaccardChars(desc, name)
	edit := 1 - normalizedLevenshtein(desc, name)

	score = containment
	partial = true
	for _, s := range []float64{overlap, jaccard, edit} {
		if s > score {
			score = s
			partial = false
		}
	}
	return score, partial
}

// containmentRatio scores substring containment by relative length, scaled to
// cap below an exact match.
func containmentRatio(a, b string) float64 {
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return 0
	}
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return float64(shorter) / float64(longer) * 0.95
}

// tokenOverlap scores multi-word names by the fraction of significant words
// (4+ characters) shared exactly or by prefix/suffix.
func tokenOverlap(desc, name string) float64 {
	nameWords := significantWords(name)
	if len(nameWords) < 2 {
		return 0
	}
	descWords := significantWords(desc)
	if len(descWords) == 0 {
		return 0
	}

	matched := 0
	for _, nw := range nameWords {
		for _, dw := range descWords {
			if nw == dw || strings.HasPrefix(dw, nw) || strings.HasPrefix(nw, dw) ||
				strings.HasSuffix(dw, nw) || strings.HasSuffix(nw, dw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(nameWords))
}

func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		if len(w) >= 4 {
			words = append(words, w)
		}
	}
	return words
}

// jaccardChars computes Jaccard similarity over the character sets of the two
// strings, ignoring spaces.
func jaccardChars(a, b string) float64 {
	setA := charSet(a)
	setB := charSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for c := range setA {
		if setB[c] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func charSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, c := range s {
		if c != ' ' {
			set[c] = true
		}
	}
	return set
}

// normalizedLevenshtein returns the edit distance divided by the longer
// string's length, so 0 means identical and 1 means entirely different.
func normalizedLevenshtein(a, b string) float64 {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return 0
	}
	return float64(levenshtein(a, b)) / float64(longer)
}

// levenshtein computes edit distance with a two-row dynamic program.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
