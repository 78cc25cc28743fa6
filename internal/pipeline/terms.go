package pipeline

// Color and finish words stripped from titles before fuzzy comparison.
var colorTerms = map[string]struct{}{
	"red": {}, "black": {}, "blue": {}, "white": {}, "green": {}, "yellow": {},
	"purple": {}, "orange": {}, "brown": {}, "pink": {}, "silver": {}, "gold": {},
	"charcoal": {}, "wine": {}, "burst": {}, "natural": {}, "sunburst": {},
	"metallic": {}, "maple": {}, "pearl": {}, "translucent": {}, "vintage": {},
}

// Generic category words stripped from titles. Multi-word entries only match
// a literal whitespace-delimited token, which can never occur after
// tokenization; they are kept for parity with the scraped-source conventions.
var commonTerms = map[string]struct{}{
	"guitar": {}, "instrument": {}, "electric guitar": {}, "acoustic guitar": {},
	"bass guitar": {},
}

// ModelSeriesTerms are catalog phrases identifying a specific product line.
// They are checked as substrings of the raw lowercased titles and act as a
// high-signal override to plain text similarity: present in both titles is a
// bonus, present in only one is a penalty. "custom shop" appears twice and
// therefore weighs double; the duplication is intentional.
var ModelSeriesTerms = []string{
	"american professional", "american vintage", "vintera", "american standard",
	"american ultra", "american performer", "player", "mim", "75th anniversary",
	"commemorative", "custom shop", "artist series", "les paul studio",
	"les paul standard", "les paul tribute", "sg standard", "sg special",
	"flying v", "explorer", "custom shop", "slash", "inspired by gibson", "se",
	"mark holcomb", "s2", "mccarty", "private stock", "hellraiser",
	"sun valley super shredder", "reaper", "blackjack", "c-1", "pro series",
	"sl2", "soloist", "rhoads", "dinky", "evh", "wolfgang", "rg", "s",
	"prestige", "jem",
}
