package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// WishlistRepository stores wishlists in Redis as JSON blobs.
type WishlistRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewWishlistRepository creates a Redis-backed wishlist repository.
func NewWishlistRepository(client *redis.Client, ttl time.Duration) *WishlistRepository {
	return &WishlistRepository{client: client, ttl: ttl}
}

func wishlistKey(sessionID string) string {
	return fmt.Sprintf("wishlist:%s", sessionID)
}

// Get retrieves the wishlist for the session.
func (r *WishlistRepository) Get(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	data, err := r.client.Get(ctx, wishlistKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("wishlist", sessionID)
		}
		return nil, fmt.Errorf("get wishlist %s: %w", sessionID, err)
	}

	var wl domain.Wishlist
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("unmarshal wishlist %s: %w", sessionID, err)
	}
	return &wl, nil
}

// Save persists the wishlist and refreshes its TTL.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	wishlist.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(wishlist)
	if err != nil {
		return fmt.Errorf("marshal wishlist %s: %w", wishlist.SessionID, err)
	}

	if err := r.client.Set(ctx, wishlistKey(wishlist.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save wishlist %s: %w", wishlist.SessionID, err)
	}
	return nil
}

// Delete removes the wishlist for the session.
func (r *WishlistRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, wishlistKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete wishlist %s: %w", sessionID, err)
	}
	return nil
}
