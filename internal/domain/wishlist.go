package domain

import "time"

// WishlistItem is a saved product reference on a wishlist.
type WishlistItem struct {
	ProductID  int64     `json:"product_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Category   Category  `json:"category"`
	Image      string    `json:"image,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

// Wishlist is an ordered set of saved products for one session. Each product
// appears at most once and entries keep the order they were added in.
type Wishlist struct {
	SessionID string         `json:"session_id"`
	Items     []WishlistItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewWishlist creates an empty wishlist for the session.
func NewWishlist(sessionID string) *Wishlist {
	return &Wishlist{
		SessionID: sessionID,
		Items:     []WishlistItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

// Contains reports whether productID is saved on the wishlist.
func (w *Wishlist) Contains(productID int64) bool {
	return w.FindItem(productID) >= 0
}

// FindItem returns the index of the entry holding productID, or -1.
func (w *Wishlist) FindItem(productID int64) int {
	for i, item := range w.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
