package domain

import "time"

// OrderStatus is an unguarded label: any status may replace any other, there
// is no enforced transition graph.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known status labels.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is an immutable checkout snapshot. Items and Total are frozen at
// creation time; removing a line later does not recompute Total, the original
// value stays authoritative. Only Status is mutable.
type Order struct {
	ID        string      `json:"id"`
	Items     []CartItem  `json:"items"`
	Total     float64     `json:"total"` // target currency, precomputed at checkout
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}
