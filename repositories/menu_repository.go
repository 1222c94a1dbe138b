package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"gran-estacion/models"
)

// MenuRepository holds the catalog loaded once per process. It is read-only
// after Load; a failed load leaves it empty and callers render empty views.
type MenuRepository struct {
	categories []models.Category
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{categories: []models.Category{}}
}

// Load reads the menu document. Product ids must be unique across the whole
// catalog; a duplicate is a data-integrity error and fails the load.
func (r *MenuRepository) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read menu document: %w", err)
	}

	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return fmt.Errorf("failed to parse menu document: %w", err)
	}

	seen := map[string]bool{}
	for _, cat := range categories {
		for _, p := range cat.Products {
			if p.ID == "" {
				return fmt.Errorf("menu document contains a product without an id in category %q", cat.Name)
			}
			if p.Price < 0 {
				return fmt.Errorf("product %q has a negative price", p.ID)
			}
			if seen[p.ID] {
				return fmt.Errorf("duplicate product id %q in menu document", p.ID)
			}
			seen[p.ID] = true
		}
	}

	r.categories = categories
	return nil
}

// Categories returns the catalog in document order.
func (r *MenuRepository) Categories() []models.Category {
	return r.categories
}

// FindProductByID scans every category in order and returns the first match.
func (r *MenuRepository) FindProductByID(id string) (models.Product, bool) {
	for _, cat := range r.categories {
		for _, p := range cat.Products {
			if p.ID == id {
				return p, true
			}
		}
	}
	return models.Product{}, false
}
