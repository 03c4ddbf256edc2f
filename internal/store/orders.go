package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/talkbazaar/storefront/internal/domain"
)

type orderState struct {
	Orders []domain.Order `json:"orders"`
}

// OrderStore is the persisted, append-only order log, most recent first.
// Orders are snapshots: items and total are frozen at creation, only status
// mutates. Removing a line never recomputes the stored total.
type OrderStore struct {
	mu      sync.Mutex
	state   orderState
	storage *Storage
	bus     EventBus.Bus
	node    *snowflake.Node
	now     func() time.Time
}

// NewOrderStore rehydrates the order log from storage. node generates the
// order ids.
func NewOrderStore(storage *Storage, bus EventBus.Bus, node *snowflake.Node) (*OrderStore, error) {
	s := &OrderStore{storage: storage, bus: bus, node: node, now: time.Now}
	if _, err := storage.Load(RecordOrders, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *OrderStore) persistLocked() error {
	if err := s.storage.Save(RecordOrders, &s.state); err != nil {
		return err
	}
	publish(s.bus, TopicOrdersChanged)
	return nil
}

func (s *OrderStore) indexLocked(orderID string) int {
	for n, o := range s.state.Orders {
		if o.ID == orderID {
			return n
		}
	}
	return -1
}

// CreateOrder builds a pending order from a deep copy of items with the given
// precomputed total (target currency) and prepends it to the log.
func (s *OrderStore) CreateOrder(items []domain.CartItem, total float64) (domain.Order, error) {
	order := domain.Order{
		ID:        fmt.Sprintf("ORD-%s", s.node.Generate().String()),
		Items:     domain.CloneItems(items),
		Total:     total,
		Status:    domain.OrderPending,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Orders = append([]domain.Order{order}, s.state.Orders...)
	if err := s.persistLocked(); err != nil {
		return domain.Order{}, err
	}
	return cloneOrder(order), nil
}

// GetOrderByID returns the matching order, or false when absent.
func (s *OrderStore) GetOrderByID(orderID string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.indexLocked(orderID)
	if n < 0 {
		return domain.Order{}, false
	}
	return cloneOrder(s.state.Orders[n]), true
}

// Orders returns a deep copy of the log, most recent first.
func (s *OrderStore) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.state.Orders))
	for n, o := range s.state.Orders {
		out[n] = cloneOrder(o)
	}
	return out
}

// UpdateOrderStatus replaces the status label in place. Any status may be set
// from any status; there is no transition graph. Returns false when the order
// does not exist.
func (s *OrderStore) UpdateOrderStatus(orderID string, status domain.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.indexLocked(orderID)
	if n < 0 {
		return false, nil
	}
	s.state.Orders[n].Status = status
	return true, s.persistLocked()
}

// RemoveItemFromOrder drops a matching line from the order. The stored total
// is left as-is: it is a frozen snapshot value and may now overstate the
// remaining items.
func (s *OrderStore) RemoveItemFromOrder(orderID string, productID int64, size domain.ProductSize) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.indexLocked(orderID)
	if n < 0 {
		return false, nil
	}
	items := s.state.Orders[n].Items
	for i, it := range items {
		if it.Product.ID == productID && it.Size == size {
			s.state.Orders[n].Items = append(items[:i], items[i+1:]...)
			return true, s.persistLocked()
		}
	}
	return false, nil
}

// RemoveOrder deletes the order entirely. Returns false when absent.
func (s *OrderStore) RemoveOrder(orderID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.indexLocked(orderID)
	if n < 0 {
		return false, nil
	}
	s.state.Orders = append(s.state.Orders[:n], s.state.Orders[n+1:]...)
	return true, s.persistLocked()
}

// CountByStatus tallies orders per status label.
func (s *OrderStore) CountByStatus() map[domain.OrderStatus]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[domain.OrderStatus]int)
	for _, o := range s.state.Orders {
		counts[o.Status]++
	}
	return counts
}

func cloneOrder(o domain.Order) domain.Order {
	cp := o
	cp.Items = domain.CloneItems(o.Items)
	return cp
}
