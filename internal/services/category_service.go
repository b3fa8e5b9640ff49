package services

import (
	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// ListCategories retrieves the window of categories selected by the
// options plus the total match count.
func (s *CategoryService) ListCategories(opts repositories.CategoryListOptions) ([]models.Category, int64, error) {
	return s.repo.List(opts)
}

// GetCategoryByID retrieves a single category, optionally with its
// products.
func (s *CategoryService) GetCategoryByID(id string, includeProducts bool) (*models.Category, error) {
	return s.repo.GetByID(id, includeProducts)
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

// UpdateCategory applies a partial update. An empty patch is rejected
// before any storage operation executes.
func (s *CategoryService) UpdateCategory(id string, fields map[string]any) (*models.Category, error) {
	if len(fields) == 0 {
		return nil, apperrors.BadRequest("No fields to update", nil)
	}
	return s.repo.Update(id, fields)
}

// DeleteCategory deletes a category by its ID. Products referencing it are
// left untouched.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
