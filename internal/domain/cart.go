package domain

import "time"

// CartItem is a product line in a cart with its quantity. Quantity is always
// at least 1; a removal is expressed by deleting the line, never by quantity 0.
type CartItem struct {
	ProductID  int64    `json:"product_id"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"price_cents"`
	Category   Category `json:"category"`
	Image      string   `json:"image,omitempty"`
	Quantity   int      `json:"quantity"`
}

// LineTotalCents returns price times quantity for the line.
func (i CartItem) LineTotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}

// Cart holds the shopping cart for one browsing session. Lines keep their
// insertion order; adding an existing product merges into its line in place.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for the session.
func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

// FindItem returns the index of the line holding productID, or -1.
func (c *Cart) FindItem(productID int64) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// ItemCount returns the sum of all line quantities.
func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// SubtotalCents returns the sum of all line totals.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.LineTotalCents()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
