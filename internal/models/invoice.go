package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses accepted by the invoice form.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice is a persisted invoice row. Amount is stored in integer cents.
type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Amount     int64     `gorm:"index"`
	Status     string    `gorm:"index"`
	Date       time.Time `gorm:"type:date"`
	CreatedAt  time.Time
}
