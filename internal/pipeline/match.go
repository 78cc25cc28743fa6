package pipeline

import (
	"gearflip/internal"
	"gearflip/internal/catalog"
	"gearflip/internal/config"
)

type Matcher struct {
	cfg   config.Config
	index *catalog.BrandIndex
}

func NewMatcher(cfg config.Config, newListings []internal.ListingRecord) *Matcher {
	return &Matcher{cfg: cfg, index: catalog.BuildBrandIndex(newListings)}
}

// FindBestMatch selects the single new listing of the same brand whose
// normalized title is textually closest to the used listing's, provided the
// similarity clears the configured threshold. Only that one textual best
// match is then re-scored with the full composite score; a candidate with
// slightly lower text similarity but better price or model alignment is
// never considered. A missing brand or empty bucket is a normal no-match
// outcome, not an error.
func (m *Matcher) FindBestMatch(used internal.ListingRecord) (*internal.ListingRecord, float64) {
	candidates := m.index.Candidates(used.Brand)
	if len(candidates) == 0 {
		return nil, 0
	}

	usedNorm := NormalizeTitle(used.Title, used.Brand)

	bestIdx := -1
	bestSim := -1
	for i, cand := range candidates {
		sim := TokenSetRatio(usedNorm, NormalizeTitle(cand.Title, used.Brand))
		if sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}
	if bestIdx < 0 || float64(bestSim) < m.cfg.SimilarityThreshold {
		return nil, 0
	}

	matched := candidates[bestIdx]
	score := MatchScore(used.Title, matched.Title, used.Price, matched.Price, used.Brand)
	return &matched, score
}
