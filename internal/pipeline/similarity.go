package pipeline

import (
	"strings"

	"github.com/hbollon/go-edlib"

	"gearflip/internal/util"
)

// TokenSetRatio computes a fuzzy similarity in [0,100] between two strings
// that is insensitive to token order and repetition and favors partial
// containment: when one string's tokens are a subset of the other's, the
// ratio is 100. The three canonical comparisons are built from the sorted
// unique-token intersection and the two sorted remainders, and the best
// pairwise Levenshtein ratio among them wins.
func TokenSetRatio(a, b string) int {
	tokensA := util.UniqueSorted(util.Tokenize(a))
	tokensB := util.UniqueSorted(util.Tokenize(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setB := map[string]struct{}{}
	for _, t := range tokensB {
		setB[t] = struct{}{}
	}
	setA := map[string]struct{}{}
	for _, t := range tokensA {
		setA[t] = struct{}{}
	}

	var intersection, onlyA, onlyB []string
	for _, t := range tokensA {
		if _, ok := setB[t]; ok {
			intersection = append(intersection, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for _, t := range tokensB {
		if _, ok := setA[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}

	base := strings.Join(intersection, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := levenshteinRatio(base, combinedA)
	if r := levenshteinRatio(base, combinedB); r > best {
		best = r
	}
	if r := levenshteinRatio(combinedA, combinedB); r > best {
		best = r
	}
	return best
}

func levenshteinRatio(a, b string) int {
	if a == b {
		return 100
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	dist := edlib.LevenshteinDistance(a, b)
	ratio := 100 * (1 - float64(dist)/float64(longest))
	if ratio < 0 {
		return 0
	}
	return int(ratio + 0.5)
}
