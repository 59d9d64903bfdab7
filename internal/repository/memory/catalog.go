// Package memory provides the embedded product catalog. The storefront ships
// with its seed catalog compiled in so it can run without a database.
package memory

import (
	"context"
	"strconv"

	"github.com/timursarsembai/crochet-shop/internal/domain"
	apperrors "github.com/timursarsembai/crochet-shop/pkg/errors"
)

// CatalogRepository serves products from an in-memory seed. It is read-only
// after construction and safe for concurrent use.
type CatalogRepository struct {
	products []domain.Product
	byID     map[int64]int
}

// NewCatalogRepository creates a catalog over the given products. With no
// products it falls back to the embedded seed.
func NewCatalogRepository(products ...domain.Product) *CatalogRepository {
	if len(products) == 0 {
		products = SeedProducts()
	}

	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &CatalogRepository{products: products, byID: byID}
}

// GetByID returns the product or a not found error.
func (r *CatalogRepository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}

	p := r.products[i]
	return &p, nil
}

// List returns products in catalog order, optionally filtered by category.
func (r *CatalogRepository) List(_ context.Context, category domain.Category) ([]domain.Product, error) {
	if category == "" {
		out := make([]domain.Product, len(r.products))
		copy(out, r.products)
		return out, nil
	}

	var out []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// SeedProducts returns the embedded storefront catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Milo the Octopus", PriceCents: 2499, Category: domain.CategorySea,
			Description: "Eight wiggly legs and a permanent smile, crocheted in soft coral cotton.",
			Details:     []string{"100% cotton yarn", "Approx. 18 cm tall", "Safety eyes, hand wash only"},
			Images:      []string{"/images/milo-octopus-1.jpg", "/images/milo-octopus-2.jpg"},
		},
		{
			ID: 2, Name: "Bella the Bunny", PriceCents: 1999, Category: domain.CategoryAnimals,
			Description: "Floppy-eared bunny in cream yarn with an embroidered nose.",
			Details:     []string{"Soft acrylic blend", "Approx. 22 cm tall", "Embroidered features, machine washable"},
			Images:      []string{"/images/bella-bunny-1.jpg"},
		},
		{
			ID: 3, Name: "Oscar the Owl", PriceCents: 2199, Category: domain.CategoryAnimals,
			Description: "Wide-eyed forest owl with layered feather stitching.",
			Details:     []string{"100% cotton yarn", "Approx. 16 cm tall", "Layered feather stitching"},
			Images:      []string{"/images/oscar-owl-1.jpg"},
		},
		{
			ID: 4, Name: "Rex the T-Rex", PriceCents: 3299, Category: domain.CategoryDinosaurs,
			Description: "Ferocious but huggable, with tiny arms and big opinions.",
			Details:     []string{"Soft acrylic blend", "Approx. 28 cm long", "Polyester fiberfill, hand wash only"},
			Images:      []string{"/images/rex-trex-1.jpg", "/images/rex-trex-2.jpg"},
		},
		{
			ID: 5, Name: "Dotty the Triceratops", PriceCents: 2999, Category: domain.CategoryDinosaurs,
			Description: "Three soft horns and a frill in pastel mint.",
			Details:     []string{"100% cotton yarn", "Approx. 24 cm long", "Pastel mint colorway"},
			Images:      []string{"/images/dotty-triceratops-1.jpg"},
		},
		{
			ID: 6, Name: "Finn the Whale", PriceCents: 2799, Category: domain.CategorySea,
			Description: "Gentle giant in ocean blue with a water spout detail.",
			Details:     []string{"100% cotton yarn", "Approx. 26 cm long", "Hand wash only"},
			Images:      []string{"/images/finn-whale-1.jpg"},
		},
		{
			ID: 7, Name: "Luna the Unicorn", PriceCents: 3499, Category: domain.CategoryFantasy,
			Description: "Rainbow mane, golden horn, and a dusting of stardust.",
			Details:     []string{"Soft acrylic blend", "Approx. 25 cm tall", "Metallic thread horn"},
			Images:      []string{"/images/luna-unicorn-1.jpg", "/images/luna-unicorn-2.jpg"},
		},
		{
			ID: 8, Name: "Ember the Dragon", PriceCents: 3899, Category: domain.CategoryFantasy,
			Description: "Scaled wings and a curled tail in deep crimson.",
			Details:     []string{"100% cotton yarn", "Approx. 27 cm long", "Wired wings hold their shape"},
			Images:      []string{"/images/ember-dragon-1.jpg"},
		},
		{
			ID: 9, Name: "Woodland Friends Set", PriceCents: 5999, Category: domain.CategorySets,
			Description: "Fox, hedgehog, and squirrel together in one forest bundle.",
			Details:     []string{"Set of three", "100% cotton yarn", "Each approx. 15 cm tall"},
			Images:      []string{"/images/woodland-set-1.jpg"},
		},
		{
			ID: 10, Name: "Ocean Explorers Set", PriceCents: 6499, Category: domain.CategorySets,
			Description: "Octopus, whale, and crab for an underwater adventure.",
			Details:     []string{"Set of three", "100% cotton yarn", "Each approx. 14 cm tall"},
			Images:      []string{"/images/ocean-set-1.jpg"},
		},
		{
			ID: 11, Name: "Cloud Rattle", PriceCents: 1499, Category: domain.CategoryBaby,
			Description: "Soft rattle in hypoallergenic cotton, safe from the first day.",
			Details:     []string{"Hypoallergenic cotton", "Approx. 10 cm wide", "Gentle rattle insert, machine washable"},
			Images:      []string{"/images/cloud-rattle-1.jpg"},
		},
		{
			ID: 12, Name: "Sleepy Bear Lovey", PriceCents: 1899, Category: domain.CategoryBaby,
			Description: "Security blanket with a drowsy bear head and satin trim.",
			Details:     []string{"Organic cotton and satin", "Approx. 30 cm square", "Machine washable on gentle cycle"},
			Images:      []string{"/images/sleepy-bear-1.jpg"},
		},
	}
}
