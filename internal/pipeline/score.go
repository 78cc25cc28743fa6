package pipeline

import "strings"

// MatchScore blends textual similarity, model/series-term agreement and a
// price-difference penalty into one confidence score capped at 100. The
// score has no floor and is a ranking signal, not a probability.
//
// The fuzzy component compares brand-stripped normalized titles, while the
// model-term component checks phrases against the raw lowercased titles.
// The two deliberately use different normalizations; unifying them changes
// output scores.
func MatchScore(usedTitle, newTitle string, usedPrice, newPrice float64, brand string) float64 {
	usedNorm := NormalizeTitle(usedTitle, brand)
	newNorm := NormalizeTitle(newTitle, brand)
	fuzzy := float64(TokenSetRatio(usedNorm, newNorm))

	usedLower := strings.ToLower(usedTitle)
	newLower := strings.ToLower(newTitle)
	bonus := 0.0
	for _, term := range ModelSeriesTerms {
		inUsed := strings.Contains(usedLower, term)
		inNew := strings.Contains(newLower, term)
		switch {
		case inUsed && inNew:
			bonus += 5
		case inUsed || inNew:
			bonus -= 5
		}
	}

	penalty := priceDropPenalty(usedPrice, newPrice)

	// Short used titles carry less lexical signal: discount the base
	// similarity and weight the model-term bonus up.
	if len(strings.Fields(usedTitle)) <= 2 {
		fuzzy -= 10
		bonus *= 1.5
	}

	final := fuzzy + bonus - penalty
	if final > 100 {
		final = 100
	}
	return final
}

// priceDropPenalty grows with the percentage gap between new and used price.
// Brackets are evaluated highest-first; a zero new price makes the
// percentage undefined and is treated as no penalty.
func priceDropPenalty(usedPrice, newPrice float64) float64 {
	if newPrice == 0 {
		return 0
	}
	pct := (newPrice - usedPrice) / newPrice * 100
	switch {
	case pct > 80:
		return pct * 0.6
	case pct > 70:
		return pct * 0.45
	case pct > 60:
		return pct * 0.3
	case pct > 50:
		return pct * 0.15
	case pct > 40:
		return pct * 0.08
	case pct > 30:
		return pct * 0.04
	case pct > 20:
		return pct * 0.02
	case pct > 10:
		return pct * 0.01
	}
	return 0
}
