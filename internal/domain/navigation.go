package domain

// Page identifies a storefront view.
type Page string

const (
	PageHome         Page = "home"
	PageAllCreations Page = "all-creations"
	PageAbout        Page = "about"
	PageContact      Page = "contact"
	PageProduct      Page = "product"
	PageCart         Page = "cart"
	PageCheckout     Page = "checkout"
	PageWishlist     Page = "wishlist"
	PageCustomOrder  Page = "custom-order"
)

// IsValid reports whether the page is a known storefront view.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageAllCreations, PageAbout, PageContact, PageProduct,
		PageCart, PageCheckout, PageWishlist, PageCustomOrder:
		return true
	}
	return false
}

// RequiresProduct reports whether the page needs a selected product.
func (p Page) RequiresProduct() bool {
	return p == PageProduct
}

// NavigationState is where the session currently is in the storefront.
// SelectedProductID is only set while viewing a product detail page.
type NavigationState struct {
	SessionID         string `json:"session_id"`
	CurrentPage       Page   `json:"current_page"`
	SelectedProductID int64  `json:"selected_product_id,omitempty"`
}

// NewNavigationState returns the initial state pointing at the home page.
func NewNavigationState(sessionID string) *NavigationState {
	return &NavigationState{
		SessionID:   sessionID,
		CurrentPage: PageHome,
	}
}
