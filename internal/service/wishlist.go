package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/internal/event"
	"github.com/timursarsembai/crochet-shop/internal/repository"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// WishlistService manages the per-session wishlist. The wishlist is an
// ordered set: adding a saved product again is a no-op, entries keep the
// order they arrived in.
type WishlistService struct {
	wishlists repository.WishlistRepository
	products  repository.ProductRepository
	cart      *CartService
	events    event.Publisher
	logger    *slog.Logger
}

// NewWishlistService creates the wishlist service.
func NewWishlistService(
	wishlists repository.WishlistRepository,
	products repository.ProductRepository,
	cart *CartService,
	events event.Publisher,
	logger *slog.Logger,
) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		products:  products,
		cart:      cart,
		events:    events,
		logger:    logger,
	}
}

// GetWishlist returns the session's wishlist. A session without one gets a
// fresh empty wishlist.
func (s *WishlistService) GetWishlist(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	wl, err := s.wishlists.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewWishlist(sessionID), nil
		}
		return nil, err
	}
	return wl, nil
}

// Add saves the product on the wishlist. Adding an already saved product
// leaves the wishlist unchanged.
func (s *WishlistService) Add(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	wl, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if wl.Contains(productID) {
		return wl, nil
	}

	wl.Items = append(wl.Items, domain.WishlistItem{
		ProductID:  product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Category:   product.Category,
		Image:      product.PrimaryImage(),
		AddedAt:    time.Now().UTC(),
	})

	if err := s.wishlists.Save(ctx, wl); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "wishlist item added",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
	)
	s.events.WishlistUpdated(ctx, wl)

	return wl, nil
}

// Remove deletes the product from the wishlist. Removing a product that is
// not saved is a no-op.
func (s *WishlistService) Remove(ctx context.Context, sessionID string, productID int64) (*domain.Wishlist, error) {
	wl, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := wl.FindItem(productID)
	if i < 0 {
		return wl, nil
	}

	wl.Items = append(wl.Items[:i], wl.Items[i+1:]...)

	if err := s.wishlists.Save(ctx, wl); err != nil {
		return nil, err
	}

	s.events.WishlistUpdated(ctx, wl)
	return wl, nil
}

// Contains reports whether the product is saved on the session's wishlist.
func (s *WishlistService) Contains(ctx context.Context, sessionID string, productID int64) (bool, error) {
	wl, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return wl.Contains(productID), nil
}

// MoveToCart adds one unit of the saved product to the cart. The wishlist
// entry stays put, so the customer can gift the same piece twice.
func (s *WishlistService) MoveToCart(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	wl, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !wl.Contains(productID) {
		return nil, apperrors.NotFound("wishlist item", strconv.FormatInt(productID, 10))
	}

	cart, err := s.cart.AddItem(ctx, sessionID, productID, 1)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "wishlist item moved to cart",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
	)

	return cart, nil
}
