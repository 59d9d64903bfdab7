package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *CatalogRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewCatalogRepository(mock)
}

func productRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "price_cents", "category", "description", "details", "images"})
}

func TestCatalogRepository_GetByID(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(productRows().AddRow(
			int64(1), "Milo the Octopus", int64(2499), domain.CategorySea,
			"Eight wiggly legs.", []string{"100% cotton yarn"}, []string{"/images/milo-1.jpg"},
		))

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Milo the Octopus", p.Name)
	assert.Equal(t, int64(2499), p.PriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetByIDNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(productRows())

	_, err := repo.GetByID(context.Background(), 42)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_ListAll(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY id").
		WillReturnRows(productRows().
			AddRow(int64(1), "Milo the Octopus", int64(2499), domain.CategorySea, "", []string{}, []string{}).
			AddRow(int64(2), "Bella the Bunny", int64(1999), domain.CategoryAnimals, "", []string{}, []string{}))

	products, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Bella the Bunny", products[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_ListByCategory(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE category").
		WithArgs("dinosaurs").
		WillReturnRows(productRows().
			AddRow(int64(4), "Rex the T-Rex", int64(3299), domain.CategoryDinosaurs, "", []string{}, []string{}))

	products, err := repo.List(context.Background(), domain.CategoryDinosaurs)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, domain.CategoryDinosaurs, products[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
