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

// NavigationRepository stores the per-session navigation state in Redis.
type NavigationRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNavigationRepository creates a Redis-backed navigation repository.
func NewNavigationRepository(client *redis.Client, ttl time.Duration) *NavigationRepository {
	return &NavigationRepository{client: client, ttl: ttl}
}

func navigationKey(sessionID string) string {
	return fmt.Sprintf("nav:%s", sessionID)
}

// Get retrieves the navigation state for the session.
func (r *NavigationRepository) Get(ctx context.Context, sessionID string) (*domain.NavigationState, error) {
	data, err := r.client.Get(ctx, navigationKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("navigation state", sessionID)
		}
		return nil, fmt.Errorf("get navigation state %s: %w", sessionID, err)
	}

	var state domain.NavigationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal navigation state %s: %w", sessionID, err)
	}
	return &state, nil
}

// Save persists the navigation state and refreshes its TTL.
func (r *NavigationRepository) Save(ctx context.Context, state *domain.NavigationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal navigation state %s: %w", state.SessionID, err)
	}

	if err := r.client.Set(ctx, navigationKey(state.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save navigation state %s: %w", state.SessionID, err)
	}
	return nil
}
