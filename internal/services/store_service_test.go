package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

// MockStoreRepository is a mock implementation of repositories.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) List(page, limit int) ([]models.Store, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]models.Store), args.Get(1).(int64), args.Error(2)
}

func (m *MockStoreRepository) GetByID(id string) (*models.Store, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) Create(store *models.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(id string, fields map[string]any) (*models.Store, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestStoreService_ListStoreProducts(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewStoreService(mockStoreRepo, mockProductRepo)

	store := &models.Store{ID: "s1", Name: "Main"}
	expected := []models.Product{{ID: "p1", StoreID: "s1", Name: "Keyboard"}}
	filter := repositories.ProductFilter{StoreID: "s1", Category: "Electronics"}

	mockStoreRepo.On("GetByID", "s1").Return(store, nil).Once()
	mockProductRepo.On("List", 1, 10, filter).Return(expected, int64(1), nil).Once()

	products, total, err := service.ListStoreProducts("s1", 1, 10, "Electronics")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, expected, products)
	mockStoreRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestStoreService_ListStoreProducts_StoreMissing(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	mockProductRepo := new(MockProductRepository)
	service := services.NewStoreService(mockStoreRepo, mockProductRepo)

	mockStoreRepo.On("GetByID", "missing").Return(nil, apperrors.NotFound("Store not found")).Once()

	products, total, err := service.ListStoreProducts("missing", 1, 10, "")

	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Zero(t, total)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	// A missing store answers 404 without touching the product listing.
	mockProductRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	mockStoreRepo.AssertExpectations(t)
}

func TestStoreService_UpdateStore_EmptyPatch(t *testing.T) {
	mockStoreRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockStoreRepo, new(MockProductRepository))

	store, err := service.UpdateStore("s1", map[string]any{})

	assert.Nil(t, store)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	mockStoreRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
