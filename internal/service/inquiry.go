package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/internal/event"
)

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// CustomOrderInput carries a commission request.
type CustomOrderInput struct {
	Name        string
	Email       string
	Description string
	BudgetCents int64
	Deadline    string
}

// InquiryService accepts contact messages and custom order requests. The
// shop owner picks them up downstream, so accepting means recording and
// publishing the inquiry.
type InquiryService struct {
	events event.Publisher
	logger *slog.Logger
}

// NewInquiryService creates the inquiry service.
func NewInquiryService(events event.Publisher, logger *slog.Logger) *InquiryService {
	return &InquiryService{events: events, logger: logger}
}

// SubmitContact records a contact page message.
func (s *InquiryService) SubmitContact(ctx context.Context, input ContactInput) (*domain.ContactInquiry, error) {
	inquiry := &domain.ContactInquiry{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	s.logger.InfoContext(ctx, "contact inquiry submitted",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("email", inquiry.Email),
	)
	s.events.ContactSubmitted(ctx, inquiry)

	return inquiry, nil
}

// SubmitCustomOrder records a made-to-order commission request.
func (s *InquiryService) SubmitCustomOrder(ctx context.Context, input CustomOrderInput) (*domain.CustomOrderRequest, error) {
	request := &domain.CustomOrderRequest{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Description: input.Description,
		BudgetCents: input.BudgetCents,
		Deadline:    input.Deadline,
		CreatedAt:   time.Now().UTC(),
	}

	s.logger.InfoContext(ctx, "custom order request submitted",
		slog.String("request_id", request.ID),
		slog.String("email", request.Email),
	)
	s.events.CustomOrderSubmitted(ctx, request)

	return request, nil
}
