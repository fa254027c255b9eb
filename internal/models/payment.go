package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a completed charge against a booked session. Amount is
// in minor currency units, matching what was sent to the gateway.
type Payment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentEmail string    `gorm:"size:255;not null;index" json:"studentEmail"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sessionId"`
	Amount       int64     `gorm:"not null" json:"amount"`
	Currency     string    `gorm:"size:10;not null;default:'usd'" json:"currency"`
	IntentID     string    `gorm:"size:255;index" json:"intentId"`
	CreatedAt    time.Time `json:"created_at"`
}
