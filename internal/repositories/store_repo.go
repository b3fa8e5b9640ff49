package repositories

import (
	"gudang/internal/models"
)

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	List(page, limit int) ([]models.Store, int64, error)
	GetByID(id string) (*models.Store, error)
	Create(store *models.Store) error
	Update(id string, fields map[string]any) (*models.Store, error)
	Delete(id string) error
}
