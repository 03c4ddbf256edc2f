package store

import (
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkbazaar/storefront/internal/domain"
)

func productA() domain.Product {
	return domain.Product{
		ID: 10, Title: "Sale Hoodie", Brand: "Himal",
		Price: 100, DiscountPercentage: 20, OnSale: true,
		Sizes: []domain.ProductSize{domain.SizeM, domain.SizeL},
	}
}

func productB() domain.Product {
	return domain.Product{
		ID: 11, Title: "Plain Tee", Brand: "Sajha",
		Price: 50,
		Sizes: []domain.ProductSize{domain.SizeS, domain.SizeM},
	}
}

func newTestCart(t *testing.T) *CartStore {
	t.Helper()
	cart, err := NewCartStore(tempStorage(t), nil)
	require.NoError(t, err)
	return cart
}

func TestAddItemMergesExistingLine(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 1))
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 1))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestAddItemDistinctSizesAreDistinctLines(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 1))
	require.NoError(t, cart.AddItem(productA(), domain.SizeL, 1))

	assert.Len(t, cart.Items(), 2)
}

func TestAddItemNormalizesQuantity(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 0))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 2))

	require.NoError(t, cart.UpdateQuantity(10, domain.SizeM, 0))
	assert.Empty(t, cart.Items())

	// same as RemoveItem: no error on an absent line either
	require.NoError(t, cart.UpdateQuantity(10, domain.SizeM, -1))
}

func TestUpdateQuantityReplaces(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 2))
	require.NoError(t, cart.UpdateQuantity(10, domain.SizeM, 5))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.RemoveItem(999, domain.SizeM))
	assert.Empty(t, cart.Items())
}

func TestSubtotalUsesEffectivePrice(t *testing.T) {
	cart := newTestCart(t)

	// A: 100 with 20% sale -> 80 each; B: 50 list
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 2))
	require.NoError(t, cart.AddItem(productB(), domain.SizeS, 1))

	assert.InDelta(t, 2*80+50, cart.Subtotal(), 1e-9)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestClearCartKeepsVisibility(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 1))
	require.NoError(t, cart.OpenCart())

	require.NoError(t, cart.ClearCart())
	assert.Empty(t, cart.Items())
	assert.True(t, cart.IsOpen())

	require.NoError(t, cart.CloseCart())
	assert.False(t, cart.IsOpen())
}

func TestCartRehydratesFromStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")

	storage, err := Open(path)
	require.NoError(t, err)
	cart, err := NewCartStore(storage, nil)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 3))
	require.NoError(t, cart.OpenCart())
	require.NoError(t, storage.Close())

	storage, err = Open(path)
	require.NoError(t, err)
	defer storage.Close()

	reloaded, err := NewCartStore(storage, nil)
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].Product.ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 80.0, items[0].Product.EffectivePrice(), 1e-9)
	assert.True(t, reloaded.IsOpen())
}

func TestCartPublishesChanges(t *testing.T) {
	bus := EventBus.New()
	changes := 0
	require.NoError(t, bus.Subscribe(TopicCartChanged, func() { changes++ }))

	cart, err := NewCartStore(tempStorage(t), bus)
	require.NoError(t, err)

	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 1))
	require.NoError(t, cart.UpdateQuantity(10, domain.SizeM, 2))
	require.NoError(t, cart.ClearCart())

	assert.Equal(t, 3, changes)
}

func TestItemsReturnsCopy(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA(), domain.SizeM, 1))

	items := cart.Items()
	items[0].Quantity = 99
	items[0].Product.Price = 1

	fresh := cart.Items()
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.InDelta(t, 100.0, fresh[0].Product.Price, 1e-9)
}
