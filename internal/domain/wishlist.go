package domain

import "time"

// WishlistItem is a saved product id; at most one entry per product.
type WishlistItem struct {
	ProductID int64     `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}
