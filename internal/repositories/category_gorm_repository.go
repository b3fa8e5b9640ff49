package repositories

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gudang/internal/apperrors"
	"gudang/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

func (r *GORMCategoryRepository) applySearch(tx *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return tx
	}
	// Case-insensitive on every backend, matching the ILIKE semantics of
	// the category search family.
	pattern := "%" + strings.ToLower(search) + "%"
	return tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
}

// List returns the window of categories selected by the options plus the
// total match count.
func (r *GORMCategoryRepository) List(opts CategoryListOptions) ([]models.Category, int64, error) {
	column := "created_at"
	if opts.SortBy == "name" {
		column = "name"
	}
	direction := "DESC"
	if opts.Order == "asc" {
		direction = "ASC"
	}

	var (
		wg         sync.WaitGroup
		categories []models.Category
		total      int64
		findErr    error
		countErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tx := r.applySearch(r.db.Model(&models.Category{}), opts.Search)
		if opts.IncludeProducts {
			tx = tx.Preload("Products")
		}
		findErr = tx.Order(column + " " + direction).
			Limit(opts.Limit).
			Offset(opts.Offset).
			Find(&categories).Error
	}()
	go func() {
		defer wg.Done()
		countErr = r.applySearch(r.db.Model(&models.Category{}), opts.Search).
			Count(&total).Error
	}()
	wg.Wait()

	if findErr != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", findErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", countErr)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, total, nil
}

// GetByID retrieves a single category, optionally with its products.
func (r *GORMCategoryRepository) GetByID(id string, includeProducts bool) (*models.Category, error) {
	tx := r.db
	if includeProducts {
		tx = tx.Preload("Products")
	}
	var category models.Category
	if err := tx.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Category not found")
		}
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	return &category, nil
}

// Create inserts a new category, assigning its ID. A duplicate name is
// rejected by the unique index and surfaces as 409.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("A category with this name already exists")
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update applies a partial update and returns the updated category.
func (r *GORMCategoryRepository) Update(id string, fields map[string]any) (*models.Category, error) {
	res := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("A category with this name already exists")
		}
		return nil, fmt.Errorf("failed to update category %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("Category not found")
	}
	return r.GetByID(id, false)
}

// Delete removes a category by its ID. Products referencing it keep their
// categoryId; the reference is intentionally unconstrained.
func (r *GORMCategoryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Category not found")
	}
	return nil
}
