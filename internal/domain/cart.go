package domain

// CartItem is a cart/order line keyed by (product id, size). The full product
// is embedded so order snapshots keep the price that was current when the
// line was added.
type CartItem struct {
	Product  Product     `json:"product"`
	Size     ProductSize `json:"size"`
	Quantity int         `json:"quantity"`
}

// LineTotal is the effective unit price times quantity, in base currency.
func (i CartItem) LineTotal() float64 {
	return i.Product.EffectivePrice() * float64(i.Quantity)
}

// Clone returns a deep copy of the line.
func (i CartItem) Clone() CartItem {
	cp := i
	cp.Product = i.Product.Clone()
	return cp
}

// CloneItems deep-copies a slice of lines so later mutation of the source
// cannot reach the copy.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	for n, it := range items {
		out[n] = it.Clone()
	}
	return out
}
