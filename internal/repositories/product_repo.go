package repositories

import (
	"github.com/shopspring/decimal"

	"gudang/internal/models"
)

// ProductFilter holds the optional listing filters. Present fields are
// folded into one conjunctive predicate in declaration order; absent
// fields contribute nothing, so the zero value matches all rows. The json
// tags drive the filters echo in the listing response; minPrice and
// maxPrice echo as decimal strings, the same convention prices use
// everywhere in the API.
type ProductFilter struct {
	Category   string           `json:"category,omitempty"`
	CategoryID string           `json:"categoryId,omitempty"`
	StoreID    string           `json:"storeId,omitempty"`
	MinPrice   *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice   *decimal.Decimal `json:"maxPrice,omitempty"`
	Search     string           `json:"search,omitempty"`
	Stock      string           `json:"stock,omitempty"`
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(page, limit int, filter ProductFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, fields map[string]any) (*models.Product, error)
	Delete(id string) error
}
