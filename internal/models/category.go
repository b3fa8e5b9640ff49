package models

import "time"

// Category represents a product category. Name is unique across all
// categories.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Populated only when the caller asks for includeProducts. The
	// reference is deliberately unconstrained: deleting a category leaves
	// product categoryId values dangling.
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:-"`
}
