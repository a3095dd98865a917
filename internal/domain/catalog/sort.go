package catalog

// SortKey selects the ordering of a catalog listing.
type SortKey string

// The sort selector enumeration.
const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ResolveSortKey maps a raw sort selector to a SortKey. Anything
// unrecognized, including the empty string, resolves to newest-first.
func ResolveSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortRating:
		return SortKey(raw)
	default:
		return SortNewest
	}
}

// Ordering is a deterministic sort instruction for the catalog store.
// Ties are broken by store-native insertion order.
type Ordering struct {
	Field      string
	Descending bool
}

// Ordering resolves the sort key to its ordering. Pure and total: every
// SortKey produced by ResolveSortKey has a defined ordering.
func (k SortKey) Ordering() Ordering {
	switch k {
	case SortPriceAsc:
		return Ordering{Field: FieldPrice}
	case SortPriceDesc:
		return Ordering{Field: FieldPrice, Descending: true}
	case SortRating:
		return Ordering{Field: FieldRating, Descending: true}
	default:
		return Ordering{Field: FieldCreatedAt, Descending: true}
	}
}
