// Package postgres provides the PostgreSQL-backed product catalog, used when
// the shop is run against a managed catalog instead of the embedded seed.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// DBPool is the subset of pgxpool.Pool used by the catalog. It matches the
// pgxmock pool interface for testing.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepository reads the product catalog from PostgreSQL.
type CatalogRepository struct {
	db DBPool
}

// NewCatalogRepository creates a PostgreSQL-backed catalog repository.
func NewCatalogRepository(db DBPool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const productColumns = `id, name, price_cents, category, description, details, images`

// GetByID returns the product or a not found error.
func (r *CatalogRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.PriceCents, &p.Category, &p.Description, &p.Details, &p.Images,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}

	return &p, nil
}

// List returns products in catalog order, optionally filtered by category.
func (r *CatalogRepository) List(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	args := []any{}
	if category != "" {
		query = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`
		args = append(args, string(category))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Category, &p.Description, &p.Details, &p.Images); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}
