// Package pricing computes cart and checkout totals. The cart page and the
// checkout page intentionally use different shipping rules: the cart shows a
// free-over-threshold preview, while checkout charges the selected tier.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/pkg/money"
)

const (
	// FreeShippingThresholdCents is the cart subtotal above which the cart
	// page previews free shipping. The threshold is strict: exactly $50.00
	// still pays the flat rate.
	FreeShippingThresholdCents int64 = 5000

	// FlatShippingCents is the cart page flat shipping rate.
	FlatShippingCents int64 = 599

	// Checkout tier fees.
	StandardShippingCents int64 = 599
	ExpressShippingCents  int64 = 1599
	PickupShippingCents   int64 = 0
)

// TaxRate is the flat sales tax applied at checkout only.
var TaxRate = decimal.NewFromFloat(0.10)

// CartShippingCents returns the cart page shipping preview: free above the
// threshold, flat rate otherwise.
func CartShippingCents(subtotalCents int64) int64 {
	if subtotalCents > FreeShippingThresholdCents {
		return 0
	}
	return FlatShippingCents
}

// TierFeeCents returns the checkout fee for the selected shipping tier.
func TierFeeCents(tier domain.ShippingTier) int64 {
	switch tier {
	case domain.ShippingExpress:
		return ExpressShippingCents
	case domain.ShippingPickup:
		return PickupShippingCents
	default:
		return StandardShippingCents
	}
}

// TaxCents returns the tax on the subtotal, rounded half away from zero.
func TaxCents(subtotalCents int64) int64 {
	return money.Percent(subtotalCents, TaxRate)
}

// Quote is the checkout pricing breakdown for a cart and shipping tier.
type Quote struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	ShippingCents int64 `json:"shipping_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// CheckoutQuote computes the full checkout breakdown. Tax applies to the
// subtotal only, never to the shipping fee.
func CheckoutQuote(subtotalCents int64, tier domain.ShippingTier) Quote {
	shipping := TierFeeCents(tier)
	tax := TaxCents(subtotalCents)
	return Quote{
		SubtotalCents: subtotalCents,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotalCents + shipping + tax,
	}
}

// CartSummary is the cart page breakdown. No tax is shown on the cart page.
type CartSummary struct {
	ItemCount     int    `json:"item_count"`
	SubtotalCents int64  `json:"subtotal_cents"`
	ShippingCents int64  `json:"shipping_cents"`
	TotalCents    int64  `json:"total_cents"`
	Subtotal      string `json:"subtotal"`
	Shipping      string `json:"shipping"`
	Total         string `json:"total"`
}

// SummarizeCart computes the cart page breakdown with formatted amounts.
func SummarizeCart(cart *domain.Cart) CartSummary {
	subtotal := cart.SubtotalCents()
	shipping := CartShippingCents(subtotal)
	total := subtotal + shipping
	return CartSummary{
		ItemCount:     cart.ItemCount(),
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TotalCents:    total,
		Subtotal:      money.FormatCents(subtotal),
		Shipping:      money.FormatCents(shipping),
		Total:         money.FormatCents(total),
	}
}

// ShippingOptions lists the selectable checkout tiers with their fees.
func ShippingOptions() []domain.ShippingOption {
	return []domain.ShippingOption{
		{
			Tier:        domain.ShippingStandard,
			Label:       "Standard Shipping",
			Description: "5-7 business days",
			FeeCents:    StandardShippingCents,
		},
		{
			Tier:        domain.ShippingExpress,
			Label:       "Express Shipping",
			Description: "1-2 business days",
			FeeCents:    ExpressShippingCents,
		},
		{
			Tier:        domain.ShippingPickup,
			Label:       "Local Pickup",
			Description: "Pick up at the studio, free",
			FeeCents:    PickupShippingCents,
		},
	}
}

// PaymentMethods lists the supported checkout payment methods.
func PaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		domain.PaymentCard,
		domain.PaymentPaypal,
		domain.PaymentBank,
	}
}
