package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/timursarsembai/crochet-shop/internal/service"
	"github.com/timursarsembai/crochet-shop/pkg/httputil"
	"github.com/timursarsembai/crochet-shop/pkg/validator"
)

// WishlistHandler serves the session wishlist endpoints.
type WishlistHandler struct {
	wishlist *service.WishlistService
	logger   *slog.Logger
}

// NewWishlistHandler creates the wishlist handler.
func NewWishlistHandler(wishlist *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, logger: logger}
}

// RegisterRoutes mounts the wishlist routes. All of them require a session.
func (h *WishlistHandler) RegisterRoutes(r chi.Router) {
	r.Get("/wishlist", h.GetWishlist)
	r.Post("/wishlist/items", h.AddItem)
	r.Get("/wishlist/items/{productID}", h.Contains)
	r.Delete("/wishlist/items/{productID}", h.RemoveItem)
	r.Post("/wishlist/items/{productID}/move-to-cart", h.MoveToCart)
}

type addWishlistItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// GetWishlist returns the session's wishlist.
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	wl, err := h.wishlist.GetWishlist(r.Context(), SessionID(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wl})
}

// AddItem saves a product on the wishlist. Saving twice is harmless.
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addWishlistItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	wl, err := h.wishlist.Add(r.Context(), SessionID(r.Context()), req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wl})
}

type containsResponse struct {
	ProductID int64 `json:"product_id"`
	Saved     bool  `json:"saved"`
}

// Contains reports whether a product is saved on the wishlist.
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productID"))
	if !ok {
		return
	}

	saved, err := h.wishlist.Contains(r.Context(), SessionID(r.Context()), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: containsResponse{ProductID: productID, Saved: saved},
	})
}

// RemoveItem deletes a wishlist entry. Removing an absent one still succeeds.
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productID"))
	if !ok {
		return
	}

	wl, err := h.wishlist.Remove(r.Context(), SessionID(r.Context()), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: wl})
}

// MoveToCart adds one unit of a saved product to the cart.
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productID"))
	if !ok {
		return
	}

	cart, err := h.wishlist.MoveToCart(r.Context(), SessionID(r.Context()), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cart})
}
