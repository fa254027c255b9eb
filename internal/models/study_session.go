package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Study session lifecycle states.
const (
	SessionPending  = "pending"
	SessionApproved = "approved"
	SessionRejected = "rejected"
)

// StudySession is a tutoring offering created by a tutor. It starts as
// pending; an admin either approves it (assigning a registration fee in
// the same update) or rejects it with feedback. A rejected session can be
// resubmitted by its tutor, which resets it to pending.
type StudySession struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	TutorName         string         `gorm:"size:255" json:"tutorName"`
	TutorEmail        string         `gorm:"size:255;not null;index" json:"tutorEmail"`
	Description       string         `gorm:"type:text" json:"description"`
	RegistrationStart time.Time      `json:"registrationStart"`
	RegistrationEnd   time.Time      `json:"registrationEnd"`
	ClassStart        time.Time      `json:"classStart"`
	ClassEnd          time.Time      `json:"classEnd"`
	Duration          string         `gorm:"size:50" json:"duration"`
	RegistrationFee   float64        `gorm:"not null;default:0" json:"registrationFee"`
	Status            string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	RejectionReason   string         `gorm:"size:255" json:"rejectionReason,omitempty"`
	Feedback          string         `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
