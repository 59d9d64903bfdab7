// Package service implements the storefront use cases on top of the
// repository and event ports.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	"github.com/timursarsembai/crochet-shop/internal/repository"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// CatalogService serves product lookups and listings.
type CatalogService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService creates the catalog service.
func NewCatalogService(products repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{products: products, logger: logger}
}

// GetProduct returns the product or a not found error.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListProducts returns the catalog, optionally filtered by category. An empty
// category returns everything; an unknown one is rejected.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	cat := domain.Category(category)
	if category != "" && !cat.IsValid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", category))
	}

	return s.products.List(ctx, cat)
}

// Categories returns all catalog categories in display order.
func (s *CatalogService) Categories() []domain.Category {
	return domain.Categories()
}
