package domain

// SortOption selects the ordering of a catalog result list.
type SortOption string

const (
	SortNewest    SortOption = "newest"     // descending product id
	SortPriceLow  SortOption = "price-low"  // ascending effective price
	SortPriceHigh SortOption = "price-high" // descending effective price
	SortRating    SortOption = "rating"     // descending rating
)

// ValidSortOption reports whether s is a known sort order.
func ValidSortOption(s SortOption) bool {
	switch s {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// PriceRange is an inclusive bound over effective price. A Max of zero or
// below disables the upper bound so a zero-value FilterState passes
// everything.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price falls inside the range, boundaries included.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max > 0 && price > r.Max {
		return false
	}
	return true
}

// FilterState is the structured filter criteria of a catalog request. Empty
// sets impose no constraint; active predicates AND together.
type FilterState struct {
	PriceRange PriceRange    `json:"priceRange"`
	Brands     []string      `json:"brands"`
	Sizes      []ProductSize `json:"sizes"`
	OnSale     bool          `json:"onSale"`
}

// NewFilterState returns the UI's default criteria: price 0..1000, no brand
// or size constraint, sale not required.
func NewFilterState() FilterState {
	return FilterState{PriceRange: PriceRange{Min: 0, Max: 1000}}
}

// Active reports whether any predicate deviates from the default state.
func (f FilterState) Active() bool {
	return len(f.Brands) > 0 || len(f.Sizes) > 0 || f.OnSale ||
		f.PriceRange.Min > 0 || (f.PriceRange.Max > 0 && f.PriceRange.Max < 1000)
}

// Matches applies every active predicate against the product's effective
// price, brand, size set and sale flag.
func (f FilterState) Matches(p Product) bool {
	if !f.PriceRange.Contains(p.EffectivePrice()) {
		return false
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
		return false
	}
	if len(f.Sizes) > 0 && !intersectsSizes(f.Sizes, p.Sizes) {
		return false
	}
	if f.OnSale && !p.OnSale {
		return false
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersectsSizes(want []ProductSize, have []ProductSize) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
