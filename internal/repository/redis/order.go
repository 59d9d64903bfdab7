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

// OrderRepository stores placed orders in Redis keyed by order ID.
type OrderRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOrderRepository creates a Redis-backed order repository.
func NewOrderRepository(client *redis.Client, ttl time.Duration) *OrderRepository {
	return &OrderRepository{client: client, ttl: ttl}
}

func orderKey(orderID string) string {
	return fmt.Sprintf("order:%s", orderID)
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	data, err := r.client.Get(ctx, orderKey(orderID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("order", orderID)
		}
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("unmarshal order %s: %w", orderID, err)
	}
	return &order, nil
}

// Save persists the order and refreshes its TTL.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}

	if err := r.client.Set(ctx, orderKey(order.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save order %s: %w", order.ID, err)
	}
	return nil
}
