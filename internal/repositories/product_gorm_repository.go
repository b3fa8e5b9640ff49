package repositories

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gudang/internal/apperrors"
	"gudang/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// applyFilter folds the present filter fields into a conjunctive WHERE
// clause. The fold order is fixed so generated queries are reproducible.
func (r *GORMProductRepository) applyFilter(tx *gorm.DB, f ProductFilter) *gorm.DB {
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f.CategoryID != "" {
		tx = tx.Where("category_id = ?", f.CategoryID)
	}
	if f.StoreID != "" {
		tx = tx.Where("store_id = ?", f.StoreID)
	}
	if f.MinPrice != nil {
		tx = tx.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("price <= ?", f.MaxPrice)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		tx = tx.Where("name LIKE ? OR category LIKE ?", pattern, pattern)
	}
	switch f.Stock {
	case models.StockStatusLow:
		tx = tx.Where("quantity < ?", models.LowStockThreshold)
	case models.StockStatusIn:
		tx = tx.Where("quantity >= ?", models.LowStockThreshold)
	case models.StockStatusOut:
		tx = tx.Where("quantity = 0")
	}
	return tx
}

// List returns one page of products matching the filter plus the total
// match count. The page and count queries run concurrently; the count is
// always a separate query so totals stay accurate regardless of how many
// rows the window returned.
func (r *GORMProductRepository) List(page, limit int, filter ProductFilter) ([]models.Product, int64, error) {
	offset := (page - 1) * limit

	var (
		wg       sync.WaitGroup
		products []models.Product
		total    int64
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		findErr = r.applyFilter(r.db.Model(&models.Product{}), filter).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&products).Error
	}()
	go func() {
		defer wg.Done()
		countErr = r.applyFilter(r.db.Model(&models.Product{}), filter).
			Count(&total).Error
	}()
	wg.Wait()

	if findErr != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", findErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", countErr)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product, assigning its ID. A storeId pointing at a
// nonexistent store is rejected by the foreign key and surfaces as 409.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.Conflict("Referenced store does not exist")
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies a partial update and returns the updated product.
// Not-found is decided from the affected row count, not a prior read.
func (r *GORMProductRepository) Update(id string, fields map[string]any) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.Conflict("Referenced record does not exist")
		}
		return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("Product not found")
	}
	return r.GetByID(id)
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Product not found")
	}
	return nil
}
