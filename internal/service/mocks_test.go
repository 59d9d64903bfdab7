package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *fakeCartRepo) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}
	cp := *cart
	cp.Items = append([]domain.CartItem(nil), cart.Items...)
	return &cp, nil
}

func (r *fakeCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *cart
	cp.Items = append([]domain.CartItem(nil), cart.Items...)
	r.carts[cart.SessionID] = &cp
	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

type fakeWishlistRepo struct {
	mu        sync.Mutex
	wishlists map[string]*domain.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: make(map[string]*domain.Wishlist)}
}

func (r *fakeWishlistRepo) Get(_ context.Context, sessionID string) (*domain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wl, ok := r.wishlists[sessionID]
	if !ok {
		return nil, apperrors.NotFound("wishlist", sessionID)
	}
	cp := *wl
	cp.Items = append([]domain.WishlistItem(nil), wl.Items...)
	return &cp, nil
}

func (r *fakeWishlistRepo) Save(_ context.Context, wl *domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *wl
	cp.Items = append([]domain.WishlistItem(nil), wl.Items...)
	r.wishlists[wl.SessionID] = &cp
	return nil
}

func (r *fakeWishlistRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wishlists, sessionID)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) Get(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, apperrors.NotFound("order", orderID)
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

type fakeNavigationRepo struct {
	mu     sync.Mutex
	states map[string]*domain.NavigationState
}

func newFakeNavigationRepo() *fakeNavigationRepo {
	return &fakeNavigationRepo{states: make(map[string]*domain.NavigationState)}
}

func (r *fakeNavigationRepo) Get(_ context.Context, sessionID string) (*domain.NavigationState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[sessionID]
	if !ok {
		return nil, apperrors.NotFound("navigation state", sessionID)
	}
	cp := *state
	return &cp, nil
}

func (r *fakeNavigationRepo) Save(_ context.Context, state *domain.NavigationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *state
	r.states[state.SessionID] = &cp
	return nil
}

type recordingPublisher struct {
	mu              sync.Mutex
	cartUpdates     int
	cartClears      int
	wishlistUpdates int
	ordersPlaced    []string
	ordersCompleted []string
	contacts        []string
	customOrders    []string
}

func (p *recordingPublisher) CartUpdated(_ context.Context, _ *domain.Cart) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cartUpdates++
}

func (p *recordingPublisher) CartCleared(_ context.Context, _ string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cartClears++
}

func (p *recordingPublisher) WishlistUpdated(_ context.Context, _ *domain.Wishlist) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wishlistUpdates++
}

func (p *recordingPublisher) OrderPlaced(_ context.Context, order *domain.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ordersPlaced = append(p.ordersPlaced, order.ID)
}

func (p *recordingPublisher) OrderCompleted(_ context.Context, order *domain.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ordersCompleted = append(p.ordersCompleted, order.ID)
}

func (p *recordingPublisher) ContactSubmitted(_ context.Context, inquiry *domain.ContactInquiry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contacts = append(p.contacts, inquiry.ID)
}

func (p *recordingPublisher) CustomOrderSubmitted(_ context.Context, request *domain.CustomOrderRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.customOrders = append(p.customOrders, request.ID)
}

func (p *recordingPublisher) completedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ordersCompleted)
}
