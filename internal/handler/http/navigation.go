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

// NavigationHandler serves the session's current view.
type NavigationHandler struct {
	navigation *service.NavigationService
	logger     *slog.Logger
}

// NewNavigationHandler creates the navigation handler.
func NewNavigationHandler(navigation *service.NavigationService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{navigation: navigation, logger: logger}
}

// RegisterRoutes mounts the navigation routes. Both require a session.
func (h *NavigationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/navigation", h.State)
	r.Post("/navigation", h.Navigate)
}

type navigateRequest struct {
	Page      string `json:"page" validate:"required"`
	ProductID int64  `json:"product_id,omitempty"`
}

// State returns where the session currently is.
func (h *NavigationHandler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.navigation.State(r.Context(), SessionID(r.Context()))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: state})
}

// Navigate moves the session to a page. The response carries the landing
// page, which differs from the request when a guard redirects.
func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	state, err := h.navigation.Navigate(r.Context(), SessionID(r.Context()), domain.Page(req.Page), req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: state})
}
