package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/internal/repository"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// RedirectCanceler stops a pending post-order home redirect for a session.
type RedirectCanceler interface {
	CancelRedirect(sessionID string)
}

// NavigationService tracks which storefront view each session is on and
// enforces the navigation guards.
type NavigationService struct {
	states   repository.NavigationRepository
	products repository.ProductRepository
	cart     *CartService
	checkout RedirectCanceler
	logger   *slog.Logger
}

// NewNavigationService creates the navigation service.
func NewNavigationService(
	states repository.NavigationRepository,
	products repository.ProductRepository,
	cart *CartService,
	logger *slog.Logger,
) *NavigationService {
	return &NavigationService{states: states, products: products, cart: cart, logger: logger}
}

// BindCheckout lets explicit navigation cancel a pending post-order
// redirect. Separate from the constructor because checkout and navigation
// reference each other.
func (s *NavigationService) BindCheckout(checkout RedirectCanceler) {
	s.checkout = checkout
}

// State returns the session's current navigation state. A fresh session
// starts on the home page.
func (s *NavigationService) State(ctx context.Context, sessionID string) (*domain.NavigationState, error) {
	state, err := s.states.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewNavigationState(sessionID), nil
		}
		return nil, err
	}
	return state, nil
}

// Navigate moves the session to the given page. Viewing a product requires a
// resolvable product ID. Entering checkout with an empty cart lands on the
// cart page instead.
func (s *NavigationService) Navigate(ctx context.Context, sessionID string, page domain.Page, productID int64) (*domain.NavigationState, error) {
	if !page.IsValid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown page %q", page))
	}

	state := &domain.NavigationState{
		SessionID:   sessionID,
		CurrentPage: page,
	}

	if page.RequiresProduct() {
		if productID <= 0 {
			return nil, apperrors.InvalidInput("product page requires a product id")
		}
		if _, err := s.products.GetByID(ctx, productID); err != nil {
			return nil, err
		}
		state.SelectedProductID = productID
	}

	if page == domain.PageCheckout {
		cart, err := s.cart.GetCart(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if cart.IsEmpty() {
			s.logger.InfoContext(ctx, "empty cart checkout redirected",
				slog.String("session_id", sessionID),
			)
			state.CurrentPage = domain.PageCart
		}
	}

	if err := s.states.Save(ctx, state); err != nil {
		return nil, err
	}

	// The customer navigated on their own, so a pending post-order redirect
	// must not yank them back to the home page later.
	if s.checkout != nil {
		s.checkout.CancelRedirect(sessionID)
	}

	return state, nil
}
