package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock status labels derived from a product's quantity.
const (
	StockStatusIn  = "in_stock"
	StockStatusLow = "low_stock"
	StockStatusOut = "out_of_stock"
)

// LowStockThreshold is the quantity below which a product counts as low
// stock. The low_stock and out_of_stock bands intentionally overlap at
// quantity 0: a quantity of 0 satisfies both filter predicates.
const LowStockThreshold = 10

// Product represents a product held by a store.
//
// Category (free text) and CategoryID (reference) are independently
// settable and are not kept in sync; renaming or deleting a Category does
// not touch products that carry its name or id.
type Product struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID    string          `json:"storeId" gorm:"type:varchar(36);not null;index"`
	CategoryID *string         `json:"categoryId" gorm:"type:varchar(36)"`
	Name       string          `json:"name" gorm:"type:varchar(255);not null"`
	Category   string          `json:"category" gorm:"type:varchar(100);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity   int             `json:"quantity" gorm:"not null;default:0"`
	ImageURL   *string         `json:"imageUrl" gorm:"column:image_url;type:varchar(500)"`
	CreatedAt  time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`

	Store *Store `json:"-" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// StockStatus reports the derived stock status of the product.
func (p *Product) StockStatus() string {
	return StockStatusOf(p.Quantity)
}

// StockStatusOf derives the stock status label for a quantity. This is the
// single source of the thresholds; filtering and event payloads both go
// through it.
func StockStatusOf(quantity int) string {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity < LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
