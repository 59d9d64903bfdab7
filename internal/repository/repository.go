// Package repository defines the storage ports for the storefront. Session
// state (cart, wishlist, navigation, orders) lives in Redis; the product
// catalog is served from an embedded seed or PostgreSQL.
package repository

import (
	"context"

	"github.com/timursarsembai/crochet-shop/internal/domain"
)

// ProductRepository provides read access to the catalog.
type ProductRepository interface {
	// GetByID returns the product or apperrors.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List returns products, optionally filtered by category. An empty
	// category returns the full catalog.
	List(ctx context.Context, category domain.Category) ([]domain.Product, error)
}

// CartRepository stores carts keyed by session.
type CartRepository interface {
	// Get returns the cart or apperrors.ErrNotFound when the session has none.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// WishlistRepository stores wishlists keyed by session.
type WishlistRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Wishlist, error)
	Save(ctx context.Context, wishlist *domain.Wishlist) error
	Delete(ctx context.Context, sessionID string) error
}

// OrderRepository stores placed orders keyed by order ID.
type OrderRepository interface {
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
}

// NavigationRepository stores the current view per session.
type NavigationRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.NavigationState, error)
	Save(ctx context.Context, state *domain.NavigationState) error
}
