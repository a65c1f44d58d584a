package models

import "github.com/google/uuid"

// Customer is referenced by invoices via CustomerID. Referential integrity is
// enforced at the store, not in the form layer.
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"index"`
	Email    string
	ImageURL string
}
