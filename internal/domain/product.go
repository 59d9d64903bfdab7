package domain

import (
	"encoding/json"

	"github.com/timursarsembai/crochet-shop/pkg/money"
)

// Category identifies a product category in the catalog.
type Category string

const (
	CategoryAnimals   Category = "animals"
	CategoryDinosaurs Category = "dinosaurs"
	CategorySea       Category = "sea"
	CategoryFantasy   Category = "fantasy"
	CategorySets      Category = "sets"
	CategoryBaby      Category = "baby"
)

// Categories lists all catalog categories in display order.
func Categories() []Category {
	return []Category{
		CategoryAnimals,
		CategoryDinosaurs,
		CategorySea,
		CategoryFantasy,
		CategorySets,
		CategoryBaby,
	}
}

// IsValid reports whether the category is one of the known catalog categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAnimals, CategoryDinosaurs, CategorySea, CategoryFantasy, CategorySets, CategoryBaby:
		return true
	}
	return false
}

// Product represents a handmade item in the catalog. Prices are stored in
// cents to avoid floating point drift.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	Details     []string `json:"details,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// PrimaryImage returns the first image URL, or empty when none exist.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// MarshalJSON adds a formatted display price alongside the cent amount so
// clients never reformat money themselves.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Price string `json:"price"`
	}{
		alias: alias(p),
		Price: money.FormatCents(p.PriceCents),
	})
}
