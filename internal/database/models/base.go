package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the ISO date format used for event dates, availability keys and time logs
const DateLayout = "2006-01-02"

// BaseModel provides common fields for all models with string primary keys
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the ID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	return nil
}

// ValidDate reports whether s is a YYYY-MM-DD date
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
