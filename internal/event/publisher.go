// Package event publishes storefront domain events to Kafka. Publishing is
// best effort: a broker outage is logged and never fails the request that
// produced the event.
package event

import (
	"context"
	"log/slog"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/pkg/kafka"
	"github.com/timursarsembai/crochet-shop/pkg/logger"
)

// Topics for storefront events.
const (
	TopicCart      = "storefront.cart"
	TopicWishlist  = "storefront.wishlist"
	TopicOrders    = "storefront.orders"
	TopicInquiries = "storefront.inquiries"
)

const source = "crochet-shop"

// Publisher emits storefront domain events.
type Publisher interface {
	CartUpdated(ctx context.Context, cart *domain.Cart)
	CartCleared(ctx context.Context, sessionID string)
	WishlistUpdated(ctx context.Context, wishlist *domain.Wishlist)
	OrderPlaced(ctx context.Context, order *domain.Order)
	OrderCompleted(ctx context.Context, order *domain.Order)
	ContactSubmitted(ctx context.Context, inquiry *domain.ContactInquiry)
	CustomOrderSubmitted(ctx context.Context, request *domain.CustomOrderRequest)
}

// CartUpdatedData is the payload for cart change events.
type CartUpdatedData struct {
	SessionID     string `json:"session_id"`
	ItemCount     int    `json:"item_count"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

// OrderData is the payload for order lifecycle events.
type OrderData struct {
	OrderID      string              `json:"order_id"`
	SessionID    string              `json:"session_id"`
	TotalCents   int64               `json:"total_cents"`
	ShippingTier domain.ShippingTier `json:"shipping_tier"`
	Status       domain.OrderStatus  `json:"status"`
}

// KafkaPublisher publishes events through the shared Kafka producer.
type KafkaPublisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewKafkaPublisher creates a Kafka-backed event publisher.
func NewKafkaPublisher(producer *kafka.Producer, log *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: log}
}

func (p *KafkaPublisher) publish(ctx context.Context, topic, eventType, aggregateID, aggregateType string, data any) {
	evt, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, data)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
		return
	}

	if corrID := logger.CorrelationIDFromContext(ctx); corrID != "" {
		evt.WithCorrelationID(corrID)
	}

	if err := p.producer.Publish(ctx, topic, evt); err != nil {
		// Already logged by the producer; the request proceeds regardless.
		return
	}
}

func (p *KafkaPublisher) CartUpdated(ctx context.Context, cart *domain.Cart) {
	p.publish(ctx, TopicCart, "storefront.cart.updated", cart.SessionID, "cart", CartUpdatedData{
		SessionID:     cart.SessionID,
		ItemCount:     cart.ItemCount(),
		SubtotalCents: cart.SubtotalCents(),
	})
}

func (p *KafkaPublisher) CartCleared(ctx context.Context, sessionID string) {
	p.publish(ctx, TopicCart, "storefront.cart.cleared", sessionID, "cart", CartUpdatedData{
		SessionID: sessionID,
	})
}

func (p *KafkaPublisher) WishlistUpdated(ctx context.Context, wishlist *domain.Wishlist) {
	p.publish(ctx, TopicWishlist, "storefront.wishlist.updated", wishlist.SessionID, "wishlist", struct {
		SessionID string `json:"session_id"`
		ItemCount int    `json:"item_count"`
	}{wishlist.SessionID, len(wishlist.Items)})
}

func (p *KafkaPublisher) OrderPlaced(ctx context.Context, order *domain.Order) {
	p.publish(ctx, TopicOrders, "storefront.order.placed", order.ID, "order", orderData(order))
}

func (p *KafkaPublisher) OrderCompleted(ctx context.Context, order *domain.Order) {
	p.publish(ctx, TopicOrders, "storefront.order.completed", order.ID, "order", orderData(order))
}

func (p *KafkaPublisher) ContactSubmitted(ctx context.Context, inquiry *domain.ContactInquiry) {
	p.publish(ctx, TopicInquiries, "storefront.inquiry.contact", inquiry.ID, "inquiry", inquiry)
}

func (p *KafkaPublisher) CustomOrderSubmitted(ctx context.Context, request *domain.CustomOrderRequest) {
	p.publish(ctx, TopicInquiries, "storefront.inquiry.custom_order", request.ID, "inquiry", request)
}

func orderData(order *domain.Order) OrderData {
	return OrderData{
		OrderID:      order.ID,
		SessionID:    order.SessionID,
		TotalCents:   order.TotalCents,
		ShippingTier: order.ShippingTier,
		Status:       order.Status,
	}
}

// NoopPublisher discards all events. Used when Kafka is disabled and in tests.
type NoopPublisher struct{}

func (NoopPublisher) CartUpdated(context.Context, *domain.Cart)                        {}
func (NoopPublisher) CartCleared(context.Context, string)                              {}
func (NoopPublisher) WishlistUpdated(context.Context, *domain.Wishlist)                {}
func (NoopPublisher) OrderPlaced(context.Context, *domain.Order)                       {}
func (NoopPublisher) OrderCompleted(context.Context, *domain.Order)                    {}
func (NoopPublisher) ContactSubmitted(context.Context, *domain.ContactInquiry)         {}
func (NoopPublisher) CustomOrderSubmitted(context.Context, *domain.CustomOrderRequest) {}
