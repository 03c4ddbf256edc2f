package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkbazaar/storefront/internal/domain"
)

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Title: "Plain Tee", Brand: "Himal", Category: "mens-shirts",
			Price: 30, Rating: 3.5, Gender: "men",
			Sizes: []domain.ProductSize{domain.SizeS, domain.SizeM},
		},
		{
			ID: 2, Title: "Slim Jeans", Brand: "Everest Denim", Category: "mens-pants",
			Price: 100, DiscountPercentage: 50, OnSale: true, Rating: 4.5, Gender: "men",
			Sizes: []domain.ProductSize{domain.SizeM, domain.SizeL},
		},
		{
			ID: 3, Title: "Printed Kurti", Brand: "Sajha", Category: "womens-dresses",
			Price: 45, Rating: 4.8, Gender: "women",
			Sizes: []domain.ProductSize{domain.SizeS, domain.SizeM, domain.SizeL},
		},
		{
			ID: 4, Title: "Aviator Sunglasses", Brand: "Raya", Category: "sunglasses",
			Price: 25, DiscountPercentage: 20, OnSale: true, Rating: 4.0,
		},
	}
}

func ids(products []domain.Product) []int64 {
	out := make([]int64, len(products))
	for n, p := range products {
		out[n] = p.ID
	}
	return out
}

func TestRunBlankQueryReturnsAllSorted(t *testing.T) {
	pl := Default()
	products := fixtureProducts()

	got := pl.Run(products, Request{Filters: domain.NewFilterState(), Sort: domain.SortNewest})
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(got))

	// input order untouched
	assert.Equal(t, int64(1), products[0].ID)
}

func TestRunSortByEffectivePrice(t *testing.T) {
	pl := Default()
	products := []domain.Product{
		{ID: 1, Title: "A", Price: 30},
		{ID: 2, Title: "B", Price: 100, DiscountPercentage: 50, OnSale: true},
	}

	low := pl.Run(products, Request{Sort: domain.SortPriceLow})
	require.Len(t, low, 2)
	// effective prices: 30 and 50, so the undiscounted 30 comes first
	assert.Equal(t, []int64{1, 2}, ids(low))

	high := pl.Run(products, Request{Sort: domain.SortPriceHigh})
	assert.Equal(t, []int64{2, 1}, ids(high))
}

func TestRunSortByRating(t *testing.T) {
	pl := Default()
	got := pl.Run(fixtureProducts(), Request{Filters: domain.NewFilterState(), Sort: domain.SortRating})
	assert.Equal(t, []int64{3, 2, 4, 1}, ids(got))
}

func TestRunPriceBoundaryInclusive(t *testing.T) {
	pl := Default()
	products := fixtureProducts()

	// product 2 has effective price exactly 50
	filters := domain.FilterState{PriceRange: domain.PriceRange{Min: 50, Max: 50}}
	got := pl.Run(products, Request{Filters: filters, Sort: domain.SortNewest})
	assert.Equal(t, []int64{2}, ids(got))
}

func TestRunBrandAndSizeFilters(t *testing.T) {
	pl := Default()
	products := fixtureProducts()

	got := pl.Run(products, Request{
		Filters: domain.FilterState{
			PriceRange: domain.PriceRange{Min: 0, Max: 1000},
			Brands:     []string{"Himal", "Sajha"},
		},
		Sort: domain.SortNewest,
	})
	assert.Equal(t, []int64{3, 1}, ids(got))

	got = pl.Run(products, Request{
		Filters: domain.FilterState{
			PriceRange: domain.PriceRange{Min: 0, Max: 1000},
			Sizes:      []domain.ProductSize{domain.SizeL},
		},
		Sort: domain.SortNewest,
	})
	assert.Equal(t, []int64{3, 2}, ids(got))
}

func TestRunOnSaleFilter(t *testing.T) {
	pl := Default()
	got := pl.Run(fixtureProducts(), Request{
		Filters: domain.FilterState{PriceRange: domain.PriceRange{Min: 0, Max: 1000}, OnSale: true},
		Sort:    domain.SortNewest,
	})
	assert.Equal(t, []int64{4, 2}, ids(got))
}

func TestRunTextQueryFiltersByRelevance(t *testing.T) {
	pl := Default()
	got := pl.Run(fixtureProducts(), Request{
		Query:   "jeans",
		Filters: domain.NewFilterState(),
		Sort:    domain.SortNewest,
	})
	assert.Equal(t, []int64{2}, ids(got))

	got = pl.Run(fixtureProducts(), Request{
		Query:   "zzzz",
		Filters: domain.NewFilterState(),
		Sort:    domain.SortNewest,
	})
	assert.Empty(t, got)
}

func TestRunQuerySynonymReachesCategory(t *testing.T) {
	pl := Default()
	// "glasses" expands to "sunglasses" which matches product 4's category
	got := pl.Run(fixtureProducts(), Request{
		Query:   "glasses",
		Filters: domain.NewFilterState(),
		Sort:    domain.SortNewest,
	})
	assert.Equal(t, []int64{4}, ids(got))
}

func TestRunSegments(t *testing.T) {
	pl := Default()
	products := fixtureProducts()

	men := pl.Run(products, Request{Segment: SegmentMen, Filters: domain.NewFilterState(), Sort: domain.SortNewest})
	assert.Equal(t, []int64{2, 1}, ids(men))

	women := pl.Run(products, Request{Segment: SegmentWomen, Filters: domain.NewFilterState(), Sort: domain.SortNewest})
	assert.Equal(t, []int64{3}, ids(women))

	accessories := pl.Run(products, Request{Segment: SegmentAccessories, Filters: domain.NewFilterState(), Sort: domain.SortNewest})
	assert.Equal(t, []int64{4}, ids(accessories))

	sale := pl.Run(products, Request{Segment: SegmentSale, Filters: domain.NewFilterState(), Sort: domain.SortNewest})
	assert.Equal(t, []int64{4, 2}, ids(sale))
}

func TestQuickSearchOrdersByScore(t *testing.T) {
	pl := Default()
	products := []domain.Product{
		{ID: 1, Title: "Denim Bag", Brand: "Raya", Category: "bags", Description: ""},
		{ID: 2, Title: "Denim Jacket", Brand: "Everest Denim", Category: "mens-shirts", Description: "denim all over"},
	}

	got := pl.QuickSearch(products, "denim", 5)
	require.Len(t, got, 2)
	// product 2 scores on title, brand and description; product 1 on title only
	assert.Equal(t, []int64{2, 1}, ids(got))

	got = pl.QuickSearch(products, "denim", 1)
	assert.Equal(t, []int64{2}, ids(got))

	assert.Empty(t, pl.QuickSearch(products, "  ", 5))
}

func TestAvailableBrands(t *testing.T) {
	brands := AvailableBrands(fixtureProducts())
	assert.Equal(t, []string{"Everest Denim", "Himal", "Raya", "Sajha"}, brands)
}

func TestIsAccessory(t *testing.T) {
	assert.True(t, IsAccessory(domain.Product{Category: "mens-watches", Title: "Field Watch"}))
	assert.True(t, IsAccessory(domain.Product{Category: "tops", Title: "Leather Belt"}))
	assert.False(t, IsAccessory(domain.Product{Category: "mens-shirts", Title: "Plain Tee"}))
}
