package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/internal/event"
	"github.com/timursarsembai/crochet-shop/internal/pricing"
	"github.com/timursarsembai/crochet-shop/internal/repository"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// CartService manages the per-session shopping cart. Quantities are clamped
// to a minimum of 1 here, so no caller can drive a line to zero through an
// update; removal is always explicit.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	events   event.Publisher
	logger   *slog.Logger
}

// NewCartService creates the cart service.
func NewCartService(
	carts repository.CartRepository,
	products repository.ProductRepository,
	events event.Publisher,
	logger *slog.Logger,
) *CartService {
	return &CartService{carts: carts, products: products, events: events, logger: logger}
}

// GetCart returns the session's cart. A session without a stored cart gets a
// fresh empty one.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewCart(sessionID), nil
		}
		return nil, err
	}
	return cart, nil
}

// Summary returns the cart page totals for the session.
func (s *CartService) Summary(ctx context.Context, sessionID string) (*pricing.CartSummary, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := pricing.SummarizeCart(cart)
	return &summary, nil
}

// AddItem adds quantity of the product to the cart. Adding a product already
// in the cart merges into its existing line, keeping the line's position.
// Quantities below 1 are clamped to 1.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindItem(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Category:   product.Category,
			Image:      product.PrimaryImage(),
			Quantity:   quantity,
		})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item added",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
	)
	s.events.CartUpdated(ctx, cart)

	return cart, nil
}

// UpdateQuantity sets the quantity of an existing cart line. Values below 1
// are clamped to 1. Updating a product that is not in the cart fails.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItem(productID)
	if i < 0 {
		return nil, apperrors.NotFound("cart item", strconv.FormatInt(productID, 10))
	}

	cart.Items[i].Quantity = quantity

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.events.CartUpdated(ctx, cart)
	return cart, nil
}

// RemoveItem deletes the product's line from the cart. Removing a product
// that is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItem(productID)
	if i < 0 {
		return cart, nil
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cart item removed",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
	)
	s.events.CartUpdated(ctx, cart)

	return cart, nil
}

// Clear empties the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "cart cleared", slog.String("session_id", sessionID))
	s.events.CartCleared(ctx, sessionID)

	return nil
}
