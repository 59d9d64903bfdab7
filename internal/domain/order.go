package domain

import "time"

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	// OrderStatusProcessing means payment was accepted and the order is being
	// prepared. Orders transition to completed after the processing window.
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

// ShippingTier identifies a checkout shipping option.
type ShippingTier string

const (
	ShippingStandard ShippingTier = "standard"
	ShippingExpress  ShippingTier = "express"
	ShippingPickup   ShippingTier = "pickup"
)

// IsValid reports whether the tier is a known shipping option.
func (t ShippingTier) IsValid() bool {
	switch t {
	case ShippingStandard, ShippingExpress, ShippingPickup:
		return true
	}
	return false
}

// ShippingOption describes a selectable shipping tier with its fee.
type ShippingOption struct {
	Tier        ShippingTier `json:"tier"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	FeeCents    int64        `json:"fee_cents"`
}

// PaymentMethod identifies how the customer pays at checkout.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPaypal PaymentMethod = "paypal"
	PaymentBank   PaymentMethod = "bank"
)

// IsValid reports whether the payment method is supported.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentPaypal, PaymentBank:
		return true
	}
	return false
}

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

// Order is a placed order with its frozen pricing breakdown. Amounts are in
// cents and never recomputed after placement.
type Order struct {
	ID            string          `json:"id"`
	SessionID     string          `json:"session_id"`
	Items         []CartItem      `json:"items"`
	SubtotalCents int64           `json:"subtotal_cents"`
	ShippingCents int64           `json:"shipping_cents"`
	TaxCents      int64           `json:"tax_cents"`
	TotalCents    int64           `json:"total_cents"`
	ShippingTier  ShippingTier    `json:"shipping_tier"`
	Payment       PaymentMethod   `json:"payment_method"`
	Address       ShippingAddress `json:"address"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}
