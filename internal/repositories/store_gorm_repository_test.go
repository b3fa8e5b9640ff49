package repositories_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang/internal/apperrors"
	"gudang/internal/repositories"
)

func TestStoreRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMStoreRepository(db)

	store := seedStore(t, db, "Main", "Jakarta")
	assert.NotEmpty(t, store.ID)

	fetched, err := repo.GetByID(store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main", fetched.Name)
	assert.Equal(t, "Jakarta", fetched.Location)
	assert.Equal(t, fetched.CreatedAt, fetched.UpdatedAt)

	_, err = repo.GetByID(uuid.New().String())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestStoreRepository_List(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMStoreRepository(db)

	for i := 0; i < 5; i++ {
		seedStore(t, db, "Store", "City")
	}

	stores, total, err := repo.List(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, stores, 2)

	stores, total, err = repo.List(3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, stores, 1)
}

func TestStoreRepository_DeleteCascades(t *testing.T) {
	db := setupDB(t)
	storeRepo := repositories.NewGORMStoreRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	store := seedStore(t, db, "Main", "Jakarta")
	keep := seedStore(t, db, "Branch", "Bandung")
	doomed := seedProduct(t, db, store.ID, "Laptop", "Electronics", "1200.00", 1, time.Now())
	survivor := seedProduct(t, db, keep.ID, "Mug", "Kitchen", "9.99", 1, time.Now())

	require.NoError(t, storeRepo.Delete(store.ID))

	_, err := productRepo.GetByID(doomed.ID)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)

	// Products of other stores are untouched.
	_, err = productRepo.GetByID(survivor.ID)
	assert.NoError(t, err)

	err = storeRepo.Delete(store.ID)
	appErr, ok = apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}

func TestStoreRepository_Update(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMStoreRepository(db)
	store := seedStore(t, db, "Main", "Jakarta")

	updated, err := repo.Update(store.ID, map[string]any{"location": "Surabaya"})
	require.NoError(t, err)
	assert.Equal(t, "Surabaya", updated.Location)
	assert.Equal(t, "Main", updated.Name)

	_, err = repo.Update(uuid.New().String(), map[string]any{"name": "X"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
}
