package domain

// ProductSize is a size tag from the fixed sizing enumeration.
type ProductSize string

const (
	SizeS  ProductSize = "S"
	SizeM  ProductSize = "M"
	SizeL  ProductSize = "L"
	SizeXL ProductSize = "XL"
)

// AllSizes lists every valid size tag.
var AllSizes = []ProductSize{SizeS, SizeM, SizeL, SizeXL}

// ValidSize reports whether s is one of the known size tags.
func ValidSize(s ProductSize) bool {
	switch s {
	case SizeS, SizeM, SizeL, SizeXL:
		return true
	}
	return false
}

// Product is an immutable catalog record supplied wholesale by the catalog
// source. The core never mutates products; prices are in base currency.
type Product struct {
	ID                 int64         `json:"id"`
	Title              string        `json:"title"`
	Brand              string        `json:"brand"`
	Category           string        `json:"category"`
	Description        string        `json:"description"`
	Price              float64       `json:"price"`
	DiscountPercentage float64       `json:"discountPercentage"`
	Rating             float64       `json:"rating"`
	Stock              int           `json:"stock"`
	Gender             string        `json:"gender,omitempty"`
	Sizes              []ProductSize `json:"sizes"`
	OnSale             bool          `json:"onSale"`
	Thumbnail          string        `json:"thumbnail,omitempty"`
	Images             []string      `json:"images,omitempty"`
}

// EffectivePrice is the canonical value for all filtering, sorting and cart
// totals: the discounted price when the product is on sale, the list price
// otherwise.
func (p Product) EffectivePrice() float64 {
	if p.OnSale {
		return p.Price * (1 - p.DiscountPercentage/100)
	}
	return p.Price
}

// Savings returns the absolute discount amount in base currency.
func (p Product) Savings() float64 {
	if !p.OnSale {
		return 0
	}
	return p.Price * p.DiscountPercentage / 100
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size ProductSize) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the product with its own slice backing.
func (p Product) Clone() Product {
	cp := p
	if p.Sizes != nil {
		cp.Sizes = append([]ProductSize(nil), p.Sizes...)
	}
	if p.Images != nil {
		cp.Images = append([]string(nil), p.Images...)
	}
	return cp
}
