package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkbazaar/storefront/internal/domain"
)

func TestCacheRefreshAndLookup(t *testing.T) {
	cache := NewCache(Static([]domain.Product{
		{ID: 1, Title: "Plain Tee"},
		{ID: 2, Title: "Slim Jeans"},
	}))

	assert.Zero(t, cache.Count())
	require.NoError(t, cache.Refresh(context.Background()))
	assert.Equal(t, 2, cache.Count())

	p, found := cache.ProductByID(2)
	require.True(t, found)
	assert.Equal(t, "Slim Jeans", p.Title)

	_, found = cache.ProductByID(99)
	assert.False(t, found)
}

func TestCacheProductsReturnsCopy(t *testing.T) {
	cache := NewCache(Static([]domain.Product{{ID: 1, Title: "Plain Tee"}}))
	require.NoError(t, cache.Refresh(context.Background()))

	products := cache.Products()
	products[0] = domain.Product{ID: 99}

	fresh := cache.Products()
	assert.Equal(t, int64(1), fresh[0].ID)
}

func TestProductRecordToDomain(t *testing.T) {
	r := ProductRecord{
		ID: 7, Title: "Slim Jeans", Brand: "Everest Denim", Category: "mens-pants",
		Price: 100, DiscountPercentage: 50, OnSale: true,
		Sizes: "s, m ,L,XXL",
	}
	p := r.ToDomain()
	assert.Equal(t, int64(7), p.ID)
	// unknown tags are dropped, known ones normalized to upper case
	assert.Equal(t, []domain.ProductSize{domain.SizeS, domain.SizeM, domain.SizeL}, p.Sizes)
	assert.InDelta(t, 50, p.EffectivePrice(), 1e-9)
}

func TestParseSizesEmpty(t *testing.T) {
	assert.Empty(t, parseSizes(""))
	assert.Equal(t, "M,L", joinSizes(parseSizes("m,l")))
}
