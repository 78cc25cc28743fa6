package util

import (
	"sort"
	"strings"
)

// Tokenize splits input on whitespace and drops empty tokens.
func Tokenize(input string) []string {
	return strings.Fields(input)
}

// UniqueSorted returns the distinct tokens in ascending order.
func UniqueSorted(tokens []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
