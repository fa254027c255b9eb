package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is a study resource a tutor attaches to one of their sessions.
type Material struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"sessionId"`
	TutorEmail string         `gorm:"size:255;not null;index" json:"tutorEmail"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	ImageURL   string         `gorm:"size:512" json:"imageURL"`
	DriveLink  string         `gorm:"size:512" json:"driveLink"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
