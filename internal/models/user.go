package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold. Stored as plain strings so the column stays
// readable in the database.
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleStudent || r == RoleTutor || r == RoleAdmin
}

// User is a registered marketplace user. Email is the external identity
// key; registration against an existing email is a no-op.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      string         `gorm:"size:255" json:"name"`
	PhotoURL  string         `gorm:"size:512" json:"photoURL"`
	Role      string         `gorm:"size:20;not null;default:'student'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
