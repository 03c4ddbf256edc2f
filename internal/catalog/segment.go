package catalog

import (
	"strings"

	"github.com/talkbazaar/storefront/internal/domain"
)

// Segment scopes a catalog request to one of the storefront's top-level
// slices before filters apply.
type Segment string

const (
	SegmentAll         Segment = ""
	SegmentMen         Segment = "men"
	SegmentWomen       Segment = "women"
	SegmentAccessories Segment = "accessories"
	SegmentSale        Segment = "sale"
)

// accessoryKeywords flags typical accessory categories. Extend the list when
// new accessory types show up in the catalog.
var accessoryKeywords = []string{
	"accessor",
	"watch",
	"bag",
	"sunglass",
	"jewel",
	"wallet",
	"belt",
	"cap",
	"hat",
	"scarf",
	"glove",
}

// IsAccessory matches accessory keywords against category and title.
func IsAccessory(p domain.Product) bool {
	hay := strings.ToLower(p.Category) + " " + strings.ToLower(p.Title)
	for _, k := range accessoryKeywords {
		if strings.Contains(hay, k) {
			return true
		}
	}
	return false
}

// InSegment reports whether the product belongs to the given slice. The
// men/women slices exclude accessories; the accessories slice is exactly the
// accessory guard; sale requires the sale flag.
func InSegment(p domain.Product, seg Segment) bool {
	switch seg {
	case SegmentMen:
		isMen := p.Gender == "men" || strings.HasPrefix(strings.ToLower(p.Category), "mens-")
		return isMen && !IsAccessory(p)
	case SegmentWomen:
		isWomen := p.Gender == "women" || strings.HasPrefix(strings.ToLower(p.Category), "womens-")
		return isWomen && !IsAccessory(p)
	case SegmentAccessories:
		return IsAccessory(p)
	case SegmentSale:
		return p.OnSale
	default:
		return true
	}
}
