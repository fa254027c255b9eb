package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a personal study note owned by the student identified by Email.
type Note struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string         `gorm:"size:255;not null;index" json:"email"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
