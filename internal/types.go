package internal

type ListingSide string

const (
	SideUsed ListingSide = "used"
	SideNew  ListingSide = "new"
)

const (
	StoreSweetwater   = "Sweetwater"
	StoreGuitarCenter = "Guitar Center"
)

// ListingRecord is the common shape both source parsers normalize into.
// An empty Brand means the record can never be matched.
type ListingRecord struct {
	Title                string
	Brand                string
	Price                float64
	OriginalPrice        float64
	PriceDrop            float64
	Condition            string
	Location             string
	Slug                 string
	URL                  string
	Store                string
	ShippingPrice        float64
	ShippingAvailable    bool
	LocalPickupAvailable bool
}

// ArbitrageEntry pairs a used listing with its matched new listing. Entries
// are derived transiently during a report pass and only sorted, filtered and
// printed; input records are never mutated.
type ArbitrageEntry struct {
	Used            ListingRecord
	New             ListingRecord
	UsedShipping    float64
	UsedTotalPrice  float64
	PriceDifference float64
	MatchScore      float64
	UsedURL         string
}

// DiscountEntry is a new listing annotated with its real discount: original
// price minus current price when the listing is actually reduced.
type DiscountEntry struct {
	Listing      ListingRecord
	RealDiscount float64
}
