// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/amrhamedpage/shams-web-platform/internal/pkg/money"
)

// SessionCart represents a shopper's cart, stored in Redis per session
type SessionCart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Version   int64      `json:"version"` // bumped on every mutation, CAS-checked on save
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// LineItem is one product-and-quantity entry in the cart. Name, image and
// unit price are snapshots captured when the item was first added.
type LineItem struct {
	ProductID string    `json:"product_id"`
	NameAr    string    `json:"name_ar"`
	NameEn    string    `json:"name_en"`
	UnitPrice int64     `json:"unit_price"` // halalas, frozen at add-time
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"` // always >= 1 while the item exists
	AddedAt   time.Time `json:"added_at"`
}

// Name returns the display name for the given locale
func (li *LineItem) Name(locale string) string {
	if locale == "en" && li.NameEn != "" {
		return li.NameEn
	}
	return li.NameAr
}

// Totals represents derived cart totals, recomputed on every read
type Totals struct {
	LineCount    int    `json:"line_count"` // number of distinct products
	ItemCount    int    `json:"item_count"` // sum of quantities
	Total        int64  `json:"total"`      // sum of unit_price * quantity, halalas
	TotalDisplay string `json:"total_display"`
}

// ComputeTotals derives totals from the current line items
func (c *SessionCart) ComputeTotals() Totals {
	totals := Totals{LineCount: len(c.Items)}
	for _, item := range c.Items {
		totals.ItemCount += item.Quantity
		totals.Total += item.UnitPrice * int64(item.Quantity)
	}
	totals.TotalDisplay = money.FormatSAR(totals.Total)
	return totals
}

// FindItem returns the line item for a product id, or nil
func (c *SessionCart) FindItem(productID string) *LineItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// PriceMismatch flags a line whose snapshot price no longer matches the
// live catalog price
type PriceMismatch struct {
	ProductID    string `json:"product_id"`
	NameEn       string `json:"name_en"`
	NameAr       string `json:"name_ar"`
	CartPrice    int64  `json:"cart_price"`
	CatalogPrice int64  `json:"catalog_price"`
}
