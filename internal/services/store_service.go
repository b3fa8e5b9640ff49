package services

import (
	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	storeRepo   repositories.StoreRepository
	productRepo repositories.ProductRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo repositories.StoreRepository, productRepo repositories.ProductRepository) *StoreService {
	return &StoreService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
	}
}

// ListStores retrieves one page of stores plus the total count.
func (s *StoreService) ListStores(page, limit int) ([]models.Store, int64, error) {
	return s.storeRepo.List(page, limit)
}

// GetStoreByID retrieves a single store by its ID.
func (s *StoreService) GetStoreByID(id string) (*models.Store, error) {
	return s.storeRepo.GetByID(id)
}

// CreateStore creates a new store.
func (s *StoreService) CreateStore(store *models.Store) error {
	return s.storeRepo.Create(store)
}

// UpdateStore applies a partial update. An empty patch is rejected before
// any storage operation executes.
func (s *StoreService) UpdateStore(id string, fields map[string]any) (*models.Store, error) {
	if len(fields) == 0 {
		return nil, apperrors.BadRequest("No fields to update", nil)
	}
	return s.storeRepo.Update(id, fields)
}

// DeleteStore deletes a store and, by cascade, all of its products.
func (s *StoreService) DeleteStore(id string) error {
	return s.storeRepo.Delete(id)
}

// ListStoreProducts retrieves one page of a store's products, optionally
// narrowed to a category name. The store's existence is checked first so a
// missing store answers 404 rather than an empty page.
func (s *StoreService) ListStoreProducts(storeID string, page, limit int, category string) ([]models.Product, int64, error) {
	if _, err := s.storeRepo.GetByID(storeID); err != nil {
		return nil, 0, err
	}
	filter := repositories.ProductFilter{
		StoreID:  storeID,
		Category: category,
	}
	return s.productRepo.List(page, limit, filter)
}
