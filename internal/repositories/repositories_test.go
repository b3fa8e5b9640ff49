package repositories_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gudang/internal/database"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// setupDB opens a fresh in-memory SQLite database with foreign keys
// enforced, named after the test so parallel tests never share state.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedStore(t *testing.T, db *gorm.DB, name, location string) *models.Store {
	t.Helper()
	store := &models.Store{Name: name, Location: location}
	require.NoError(t, repositories.NewGORMStoreRepository(db).Create(store))
	return store
}

// seedProduct inserts a product with an explicit creation time so listing
// order is deterministic.
func seedProduct(t *testing.T, db *gorm.DB, storeID, name, category, price string, quantity int, createdAt time.Time) *models.Product {
	t.Helper()
	product := &models.Product{
		StoreID:   storeID,
		Name:      name,
		Category:  category,
		Price:     decimal.RequireFromString(price),
		Quantity:  quantity,
		CreatedAt: createdAt,
	}
	require.NoError(t, repositories.NewGORMProductRepository(db).Create(product))
	return product
}
