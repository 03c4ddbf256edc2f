package store

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/talkbazaar/storefront/internal/domain"
)

type wishlistState struct {
	Items []domain.WishlistItem `json:"items"`
}

// WishlistStore is the persisted set of saved product ids.
type WishlistStore struct {
	mu      sync.Mutex
	state   wishlistState
	storage *Storage
	bus     EventBus.Bus
	now     func() time.Time
}

// NewWishlistStore rehydrates the wishlist from storage.
func NewWishlistStore(storage *Storage, bus EventBus.Bus) (*WishlistStore, error) {
	s := &WishlistStore{storage: storage, bus: bus, now: time.Now}
	if _, err := storage.Load(RecordWishlist, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *WishlistStore) persistLocked() error {
	if err := s.storage.Save(RecordWishlist, &s.state); err != nil {
		return err
	}
	publish(s.bus, TopicWishlistChanged)
	return nil
}

func (s *WishlistStore) indexLocked(productID int64) int {
	for n, it := range s.state.Items {
		if it.ProductID == productID {
			return n
		}
	}
	return -1
}

// AddItem saves a product id; re-adding an existing id is a no-op.
func (s *WishlistStore) AddItem(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(productID) >= 0 {
		return nil
	}
	s.state.Items = append(s.state.Items, domain.WishlistItem{
		ProductID: productID,
		AddedAt:   s.now(),
	})
	return s.persistLocked()
}

// RemoveItem deletes a saved id if present.
func (s *WishlistStore) RemoveItem(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.indexLocked(productID)
	if n < 0 {
		return nil
	}
	s.state.Items = append(s.state.Items[:n], s.state.Items[n+1:]...)
	return s.persistLocked()
}

// IsInWishlist is a membership test.
func (s *WishlistStore) IsInWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(productID) >= 0
}

// ItemCount is the set cardinality.
func (s *WishlistStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Items)
}

// Items returns a copy of the saved entries in insertion order.
func (s *WishlistStore) Items() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WishlistItem(nil), s.state.Items...)
}
