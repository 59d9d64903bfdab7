package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/internal/event"
	"github.com/timursarsembai/crochet-shop/internal/pricing"
	"github.com/timursarsembai/crochet-shop/internal/repository"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// PlaceOrderInput carries the checkout form.
type PlaceOrderInput struct {
	ShippingTier  domain.ShippingTier
	PaymentMethod domain.PaymentMethod
	Address       domain.ShippingAddress
}

// CheckoutService places orders and drives their delayed lifecycle. An order
// sits in processing for the configured window, then completes; a short while
// after completion the cart is cleared and the session's view returns to the
// home page. Both steps run on per-session timers that are canceled when the
// session places a new order, explicitly navigates away, or the service
// shuts down.
type CheckoutService struct {
	orders     repository.OrderRepository
	navigation repository.NavigationRepository
	cart       *CartService
	events     event.Publisher
	logger     *slog.Logger

	processingDelay time.Duration
	redirectDelay   time.Duration

	mu          sync.Mutex
	completions map[string]*time.Timer
	redirects   map[string]*time.Timer
}

// NewCheckoutService creates the checkout service.
func NewCheckoutService(
	orders repository.OrderRepository,
	navigation repository.NavigationRepository,
	cart *CartService,
	events event.Publisher,
	logger *slog.Logger,
	processingDelay, redirectDelay time.Duration,
) *CheckoutService {
	return &CheckoutService{
		orders:          orders,
		navigation:      navigation,
		cart:            cart,
		events:          events,
		logger:          logger,
		processingDelay: processingDelay,
		redirectDelay:   redirectDelay,
		completions:     make(map[string]*time.Timer),
		redirects:       make(map[string]*time.Timer),
	}
}

// PlaceOrder charges the session's cart and creates a processing order. The
// cart must not be empty. The cart stays as-is until the post-completion
// redirect clears it. Pending lifecycle timers from an earlier order in the
// same session are canceled before the new ones start.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*domain.Order, error) {
	if !input.ShippingTier.IsValid() {
		return nil, apperrors.InvalidInput("unknown shipping tier")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperrors.InvalidInput("unsupported payment method")
	}

	cart, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperrors.InvalidInput("cannot check out an empty cart")
	}

	quote := pricing.CheckoutQuote(cart.SubtotalCents(), input.ShippingTier)

	order := &domain.Order{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		Items:         cart.Items,
		SubtotalCents: quote.SubtotalCents,
		ShippingCents: quote.ShippingCents,
		TaxCents:      quote.TaxCents,
		TotalCents:    quote.TotalCents,
		ShippingTier:  input.ShippingTier,
		Payment:       input.PaymentMethod,
		Address:       input.Address,
		Status:        domain.OrderStatusProcessing,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("session_id", sessionID),
		slog.Int64("total_cents", order.TotalCents),
		slog.String("shipping_tier", string(order.ShippingTier)),
	)
	s.events.OrderPlaced(ctx, order)

	s.mu.Lock()
	s.stopLocked(sessionID)
	s.completions[sessionID] = time.AfterFunc(s.processingDelay, func() {
		s.completeOrder(sessionID, order.ID)
	})
	s.mu.Unlock()

	return order, nil
}

// GetOrder returns the order or a not found error.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.Get(ctx, orderID)
}

// ShippingOptions lists the selectable shipping tiers.
func (s *CheckoutService) ShippingOptions() []domain.ShippingOption {
	return pricing.ShippingOptions()
}

// PaymentMethods lists the supported payment methods.
func (s *CheckoutService) PaymentMethods() []domain.PaymentMethod {
	return pricing.PaymentMethods()
}

// Quote computes the checkout breakdown for the session's current cart.
func (s *CheckoutService) Quote(ctx context.Context, sessionID string, tier domain.ShippingTier) (*pricing.Quote, error) {
	if !tier.IsValid() {
		return nil, apperrors.InvalidInput("unknown shipping tier")
	}

	cart, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	q := pricing.CheckoutQuote(cart.SubtotalCents(), tier)
	return &q, nil
}

// CancelRedirect stops a pending post-order home redirect for the session.
// The navigation service calls this when the customer navigates on their own
// before the redirect fires.
func (s *CheckoutService) CancelRedirect(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.redirects[sessionID]; ok {
		t.Stop()
		delete(s.redirects, sessionID)
	}
}

// Stop cancels all pending order lifecycle timers. Called on shutdown.
func (s *CheckoutService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID := range s.completions {
		s.stopLocked(sessionID)
	}
	for sessionID := range s.redirects {
		s.stopLocked(sessionID)
	}
}

// stopLocked cancels both lifecycle timers for a session. Caller holds mu.
func (s *CheckoutService) stopLocked(sessionID string) {
	if t, ok := s.completions[sessionID]; ok {
		t.Stop()
		delete(s.completions, sessionID)
	}
	if t, ok := s.redirects[sessionID]; ok {
		t.Stop()
		delete(s.redirects, sessionID)
	}
}

func (s *CheckoutService) completeOrder(sessionID, orderID string) {
	// Timers outlive the originating request, so lifecycle steps run on a
	// fresh context.
	ctx := context.Background()

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		s.logger.Error("failed to load order for completion",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		return
	}

	now := time.Now().UTC()
	order.Status = domain.OrderStatusCompleted
	order.CompletedAt = &now

	if err := s.orders.Save(ctx, order); err != nil {
		s.logger.Error("failed to complete order",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("order completed", slog.String("order_id", orderID))
	s.events.OrderCompleted(ctx, order)

	s.mu.Lock()
	delete(s.completions, sessionID)
	s.redirects[sessionID] = time.AfterFunc(s.redirectDelay, func() {
		s.redirectHome(sessionID)
	})
	s.mu.Unlock()
}

func (s *CheckoutService) redirectHome(sessionID string) {
	ctx := context.Background()

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		s.logger.Error("failed to clear cart after order completion",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.navigation.Save(ctx, domain.NewNavigationState(sessionID)); err != nil {
		s.logger.Error("failed to reset navigation after order completion",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.mu.Lock()
	delete(s.redirects, sessionID)
	s.mu.Unlock()
}
