package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment states of a booking.
const (
	BookingUnpaid = "unpaid"
	BookingPaid   = "paid"
)

// BookedSession is a student's reservation against an approved study
// session. One booking per (session, student) pair.
type BookedSession struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_booking_session_student" json:"sessionId"`
	StudentEmail  string    `gorm:"size:255;not null;uniqueIndex:idx_booking_session_student" json:"studentEmail"`
	TutorEmail    string    `gorm:"size:255;index" json:"tutorEmail"`
	SessionTitle  string    `gorm:"size:255" json:"sessionTitle"`
	PaymentStatus string    `gorm:"size:20;not null;default:'unpaid'" json:"paymentStatus"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
