package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/timursarsembai/crochet-shop/internal/service"
	"github.com/timursarsembai/crochet-shop/pkg/httputil"
	"github.com/timursarsembai/crochet-shop/pkg/validator"
)

// InquiryHandler accepts contact messages and custom order requests.
type InquiryHandler struct {
	inquiries *service.InquiryService
	logger    *slog.Logger
}

// NewInquiryHandler creates the inquiry handler.
func NewInquiryHandler(inquiries *service.InquiryService, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries, logger: logger}
}

// RegisterRoutes mounts the inquiry routes.
func (h *InquiryHandler) RegisterRoutes(r chi.Router) {
	r.Post("/inquiries/contact", h.SubmitContact)
	r.Post("/inquiries/custom-order", h.SubmitCustomOrder)
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

type customOrderRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description" validate:"required,max=2000"`
	BudgetCents int64  `json:"budget_cents" validate:"gte=0"`
	Deadline    string `json:"deadline" validate:"max=40"`
}

// SubmitContact accepts a contact page message.
func (h *InquiryHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	inquiry, err := h.inquiries.SubmitContact(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: inquiry})
}

// SubmitCustomOrder accepts a commission request.
func (h *InquiryHandler) SubmitCustomOrder(w http.ResponseWriter, r *http.Request) {
	var req customOrderRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	request, err := h.inquiries.SubmitCustomOrder(r.Context(), service.CustomOrderInput{
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
		BudgetCents: req.BudgetCents,
		Deadline:    req.Deadline,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: request})
}
