package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/internal/service"
	"github.com/timursarsembai/crochet-shop/pkg/httputil"
	"github.com/timursarsembai/crochet-shop/pkg/validator"
)

// CheckoutHandler serves order placement and lookup.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates the checkout handler.
func NewCheckoutHandler(checkout *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: logger}
}

// RegisterRoutes mounts the checkout routes. Placement and quotes require a
// session; option catalogs and order lookup do not.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Get("/checkout/shipping-options", h.ShippingOptions)
	r.Get("/checkout/payment-methods", h.PaymentMethods)
	r.Get("/checkout/orders/{orderID}", h.GetOrder)

	r.Group(func(r chi.Router) {
		r.Use(RequireSession)
		r.Get("/checkout/quote", h.Quote)
		r.Post("/checkout/orders", h.PlaceOrder)
	})
}

type placeOrderRequest struct {
	ShippingTier  string       `json:"shipping_tier" validate:"required"`
	PaymentMethod string       `json:"payment_method" validate:"required"`
	Address       addressInput `json:"address" validate:"required"`
}

type addressInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	Zip      string `json:"zip" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

// PlaceOrder creates an order from the session's cart.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), SessionID(r.Context()), service.PlaceOrderInput{
		ShippingTier:  domain.ShippingTier(req.ShippingTier),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Address: domain.ShippingAddress{
			FullName: req.Address.FullName,
			Email:    req.Address.Email,
			Street:   req.Address.Street,
			City:     req.Address.City,
			Zip:      req.Address.Zip,
			Country:  req.Address.Country,
		},
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}

// GetOrder returns an order by ID.
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: order})
}

// Quote returns the checkout totals for the cart and the ?tier= parameter.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	tier := domain.ShippingTier(r.URL.Query().Get("tier"))
	if tier == "" {
		tier = domain.ShippingStandard
	}

	quote, err := h.checkout.Quote(r.Context(), SessionID(r.Context()), tier)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: quote})
}

// ShippingOptions lists the selectable shipping tiers.
func (h *CheckoutHandler) ShippingOptions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.checkout.ShippingOptions()})
}

// PaymentMethods lists the supported payment methods.
func (h *CheckoutHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.checkout.PaymentMethods()})
}
