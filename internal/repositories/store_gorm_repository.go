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

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// List returns one page of stores, newest first, plus the total count.
func (r *GORMStoreRepository) List(page, limit int) ([]models.Store, int64, error) {
	offset := (page - 1) * limit

	var (
		wg       sync.WaitGroup
		stores   []models.Store
		total    int64
		findErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		findErr = r.db.Model(&models.Store{}).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&stores).Error
	}()
	go func() {
		defer wg.Done()
		countErr = r.db.Model(&models.Store{}).Count(&total).Error
	}()
	wg.Wait()

	if findErr != nil {
		return nil, 0, fmt.Errorf("failed to list stores: %w", findErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count stores: %w", countErr)
	}
	if stores == nil {
		stores = []models.Store{}
	}
	return stores, total, nil
}

// GetByID retrieves a single store by its ID.
func (r *GORMStoreRepository) GetByID(id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Store not found")
		}
		return nil, fmt.Errorf("failed to get store %s: %w", id, err)
	}
	return &store, nil
}

// Create inserts a new store, assigning its ID.
func (r *GORMStoreRepository) Create(store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// Update applies a partial update and returns the updated store.
func (r *GORMStoreRepository) Update(id string, fields map[string]any) (*models.Store, error) {
	res := r.db.Model(&models.Store{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update store %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("Store not found")
	}
	return r.GetByID(id)
}

// Delete removes a store and all of its products in one transaction. The
// application-level cascade keeps the behavior identical across database
// drivers regardless of foreign-key enforcement.
func (r *GORMStoreRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Product{}, "store_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete products of store %s: %w", id, err)
		}
		res := tx.Delete(&models.Store{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete store %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("Store not found")
		}
		return nil
	})
}
