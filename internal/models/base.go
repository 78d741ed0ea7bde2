package models

import (
	"time"

	"centsible/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. IDs are UUIDv4 strings and
// are immutable once assigned.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook generates a UUIDv4 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
