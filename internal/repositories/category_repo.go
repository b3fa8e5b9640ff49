package repositories

import (
	"gudang/internal/models"
)

// CategoryListOptions holds the listing controls for categories. The
// category surface paginates with limit/offset rather than page/limit;
// both conventions are kept because clients depend on each shape as-is.
type CategoryListOptions struct {
	Search          string
	Limit           int
	Offset          int
	SortBy          string // "name" or "createdAt"
	Order           string // "asc" or "desc"
	IncludeProducts bool
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	List(opts CategoryListOptions) ([]models.Category, int64, error)
	GetByID(id string, includeProducts bool) (*models.Category, error)
	Create(category *models.Category) error
	Update(id string, fields map[string]any) (*models.Category, error)
	Delete(id string) error
}
