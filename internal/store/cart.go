package store

import (
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/talkbazaar/storefront/internal/domain"
)

type cartState struct {
	Items  []domain.CartItem `json:"items"`
	IsOpen bool              `json:"isOpen"`
}

// CartStore holds the shopping cart lines plus the transient drawer
// visibility flag. Lines are keyed by (product id, size); adding an existing
// key increments its quantity. Every mutation writes the full state to
// storage before returning and then publishes TopicCartChanged.
type CartStore struct {
	mu      sync.Mutex
	state   cartState
	storage *Storage
	bus     EventBus.Bus
}

// NewCartStore rehydrates the cart from storage; a missing record starts an
// empty cart.
func NewCartStore(storage *Storage, bus EventBus.Bus) (*CartStore, error) {
	s := &CartStore{storage: storage, bus: bus}
	if _, err := storage.Load(RecordCart, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CartStore) persistLocked() error {
	if err := s.storage.Save(RecordCart, &s.state); err != nil {
		return err
	}
	publish(s.bus, TopicCartChanged)
	return nil
}

func (s *CartStore) findLocked(productID int64, size domain.ProductSize) int {
	for n, it := range s.state.Items {
		if it.Product.ID == productID && it.Size == size {
			return n
		}
	}
	return -1
}

// AddItem adds quantity of (product, size) to the cart, merging into an
// existing line when the key is already present. Size is not validated
// against product.Sizes; that belongs to the caller. A quantity below 1 is
// treated as 1.
func (s *CartStore) AddItem(product domain.Product, size domain.ProductSize, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := s.findLocked(product.ID, size); n >= 0 {
		s.state.Items[n].Quantity += quantity
	} else {
		s.state.Items = append(s.state.Items, domain.CartItem{
			Product:  product.Clone(),
			Size:     size,
			Quantity: quantity,
		})
	}
	return s.persistLocked()
}

// RemoveItem deletes the matching line; removing an absent line is a no-op.
func (s *CartStore) RemoveItem(productID int64, size domain.ProductSize) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.findLocked(productID, size)
	if n < 0 {
		return nil
	}
	s.state.Items = append(s.state.Items[:n], s.state.Items[n+1:]...)
	return s.persistLocked()
}

// UpdateQuantity replaces the line's quantity. A quantity of zero or below
// means removal, never an error.
func (s *CartStore) UpdateQuantity(productID int64, size domain.ProductSize, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(productID, size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.findLocked(productID, size)
	if n < 0 {
		return nil
	}
	s.state.Items[n].Quantity = quantity
	return s.persistLocked()
}

// ClearCart empties all lines. The drawer visibility flag is untouched.
func (s *CartStore) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = nil
	return s.persistLocked()
}

// Items returns a deep copy of the cart lines.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneItems(s.state.Items)
}

// ItemCount is the sum of quantities across all lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.state.Items {
		total += it.Quantity
	}
	return total
}

// Subtotal sums effective unit price times quantity over all lines, in base
// currency.
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.state.Items {
		total += it.LineTotal()
	}
	return total
}

// OpenCart shows the cart drawer.
func (s *CartStore) OpenCart() error {
	return s.setOpen(true)
}

// CloseCart hides the cart drawer.
func (s *CartStore) CloseCart() error {
	return s.setOpen(false)
}

func (s *CartStore) setOpen(open bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsOpen = open
	return s.persistLocked()
}

// IsOpen reports the drawer visibility flag.
func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsOpen
}
