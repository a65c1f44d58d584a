package models

import "github.com/google/uuid"

// User is a dashboard account verified by the credentials provider.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
}
