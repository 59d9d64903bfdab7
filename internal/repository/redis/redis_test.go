package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

func newTestClient(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestCartRepository_SaveAndGet(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewCartRepository(client, time.Hour)
	ctx := context.Background()

	cart := domain.NewCart("sess-1")
	cart.Items = []domain.CartItem{
		{ProductID: 1, Name: "Milo the Octopus", PriceCents: 2499, Quantity: 2},
	}
	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(2499), got.Items[0].PriceCents)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestCartRepository_GetMissing(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewCartRepository(client, time.Hour)

	_, err := repo.Get(context.Background(), "nobody")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCartRepository_Delete(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewCartRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.NewCart("sess-1")))
	require.NoError(t, repo.Delete(ctx, "sess-1"))

	_, err := repo.Get(ctx, "sess-1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// Deleting again is a no-op.
	assert.NoError(t, repo.Delete(ctx, "sess-1"))
}

func TestCartRepository_SaveSetsTTL(t *testing.T) {
	client, mr := newTestClient(t)
	repo := NewCartRepository(client, time.Hour)

	require.NoError(t, repo.Save(context.Background(), domain.NewCart("sess-1")))
	assert.Equal(t, time.Hour, mr.TTL("cart:sess-1"))
}

func TestWishlistRepository_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewWishlistRepository(client, time.Hour)
	ctx := context.Background()

	wl := domain.NewWishlist("sess-2")
	wl.Items = []domain.WishlistItem{
		{ProductID: 4, Name: "Rex the T-Rex", PriceCents: 3299, AddedAt: time.Now().UTC()},
	}
	require.NoError(t, repo.Save(ctx, wl))

	got, err := repo.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, got.Contains(4))
	assert.False(t, got.Contains(5))
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewOrderRepository(client, time.Hour)
	ctx := context.Background()

	order := &domain.Order{
		ID:            "5f0c2e6a-9d52-4d21-8f1e-1f0b9cf6a001",
		SessionID:     "sess-3",
		SubtotalCents: 4000,
		ShippingCents: 599,
		TaxCents:      400,
		TotalCents:    4999,
		ShippingTier:  domain.ShippingStandard,
		Status:        domain.OrderStatusProcessing,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, order))

	got, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, got.Status)
	assert.Equal(t, int64(4999), got.TotalCents)

	_, err = repo.Get(ctx, "missing-order")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestNavigationRepository_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewNavigationRepository(client, time.Hour)
	ctx := context.Background()

	state := &domain.NavigationState{
		SessionID:         "sess-4",
		CurrentPage:       domain.PageProduct,
		SelectedProductID: 7,
	}
	require.NoError(t, repo.Save(ctx, state))

	got, err := repo.Get(ctx, "sess-4")
	require.NoError(t, err)
	assert.Equal(t, domain.PageProduct, got.CurrentPage)
	assert.Equal(t, int64(7), got.SelectedProductID)

	_, err = repo.Get(ctx, "fresh-session")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
