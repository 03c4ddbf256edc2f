package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	onSale := Product{Price: 100, DiscountPercentage: 20, OnSale: true}
	assert.InDelta(t, 80, onSale.EffectivePrice(), 1e-9)
	assert.InDelta(t, 20, onSale.Savings(), 1e-9)

	// discount percentage is ignored while not on sale
	offSale := Product{Price: 100, DiscountPercentage: 20, OnSale: false}
	assert.InDelta(t, 100, offSale.EffectivePrice(), 1e-9)
	assert.InDelta(t, 0, offSale.Savings(), 1e-9)
}

func TestPriceRangeContains(t *testing.T) {
	r := PriceRange{Min: 10, Max: 20}
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(20))
	assert.True(t, r.Contains(15))
	assert.False(t, r.Contains(9.99))
	assert.False(t, r.Contains(20.01))

	// zero max disables the upper bound
	open := PriceRange{Min: 10}
	assert.True(t, open.Contains(1e9))
	assert.False(t, open.Contains(5))
}

func TestFilterStateEmptySetsPassEverything(t *testing.T) {
	p := Product{Price: 42, Brand: "Himal", Sizes: []ProductSize{SizeM}}
	assert.True(t, FilterState{}.Matches(p))
	assert.True(t, NewFilterState().Matches(p))
}

func TestFilterStateMatches(t *testing.T) {
	p := Product{Price: 42, Brand: "Himal", Sizes: []ProductSize{SizeM}}

	f := NewFilterState()
	f.Brands = []string{"Sajha"}
	assert.False(t, f.Matches(p))

	f = NewFilterState()
	f.Sizes = []ProductSize{SizeXL}
	assert.False(t, f.Matches(p))

	f = NewFilterState()
	f.OnSale = true
	assert.False(t, f.Matches(p))

	f = NewFilterState()
	f.Brands = []string{"Himal"}
	f.Sizes = []ProductSize{SizeM, SizeXL}
	assert.True(t, f.Matches(p))
}

func TestFilterStateActive(t *testing.T) {
	assert.False(t, NewFilterState().Active())

	f := NewFilterState()
	f.OnSale = true
	assert.True(t, f.Active())

	f = NewFilterState()
	f.PriceRange.Max = 500
	assert.True(t, f.Active())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidSize(SizeXL))
	assert.False(t, ValidSize("XXL"))
	assert.True(t, ValidOrderStatus(OrderShipped))
	assert.False(t, ValidOrderStatus("lost"))
	assert.True(t, ValidSortOption(SortPriceLow))
	assert.False(t, ValidSortOption("cheapest"))
}

func TestCloneItemsIsDeep(t *testing.T) {
	items := []CartItem{{
		Product:  Product{ID: 1, Price: 10, Sizes: []ProductSize{SizeM}},
		Size:     SizeM,
		Quantity: 1,
	}}
	cp := CloneItems(items)
	cp[0].Quantity = 9
	cp[0].Product.Sizes[0] = SizeXL

	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, SizeM, items[0].Product.Sizes[0])
}
