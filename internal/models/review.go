package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a student's rating of a session they booked.
type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sessionId"`
	StudentEmail string    `gorm:"size:255;not null" json:"studentEmail"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
