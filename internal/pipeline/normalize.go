package pipeline

import (
	"regexp"
	"strings"
)

var reNonAlnum = regexp.MustCompile(`[^a-z0-9 ]`)

// NormalizeTitle produces the canonical comparable form of a listing title:
// generic category words and the brand name are dropped, then color and
// finish words, then the remainder is lowercased and stripped of everything
// that is not a lowercase letter, digit or space. The result may be empty.
func NormalizeTitle(title, brand string) string {
	brandLower := strings.ToLower(brand)

	words := strings.Fields(title)
	filtered := make([]string, 0, len(words))
	for _, word := range words {
		lower := strings.ToLower(word)
		if _, ok := commonTerms[lower]; ok {
			continue
		}
		if brandLower != "" && lower == brandLower {
			continue
		}
		filtered = append(filtered, word)
	}

	kept := filtered[:0]
	for _, word := range filtered {
		if _, ok := colorTerms[strings.ToLower(word)]; ok {
			continue
		}
		kept = append(kept, word)
	}

	joined := strings.ToLower(strings.Join(kept, " "))
	return reNonAlnum.ReplaceAllString(joined, "")
}
