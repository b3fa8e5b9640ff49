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

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(opts repositories.CategoryListOptions) ([]models.Category, int64, error) {
	args := m.Called(opts)
	return args.Get(0).([]models.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) GetByID(id string, includeProducts bool) (*models.Category, error) {
	args := m.Called(id, includeProducts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(id string, fields map[string]any) (*models.Category, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCategoryService_ListCategories(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	opts := repositories.CategoryListOptions{Search: "elec", Limit: 10, SortBy: "name", Order: "asc"}
	expected := []models.Category{{ID: "c1", Name: "Electronics"}}

	mockRepo.On("List", opts).Return(expected, int64(1), nil).Once()

	categories, total, err := service.ListCategories(opts)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, expected, categories)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory_EmptyPatch(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	category, err := service.UpdateCategory("c1", map[string]any{})

	assert.Nil(t, category)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "No fields to update", appErr.Message)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCategoryService_CreateCategory_Conflict(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	category := &models.Category{Name: "Electronics"}
	mockRepo.On("Create", category).Return(apperrors.Conflict("A category with this name already exists")).Once()

	err := service.CreateCategory(category)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 409, appErr.Status)
	mockRepo.AssertExpectations(t)
}
