package dto

import "github.com/google/uuid"

type TokenRequest struct {
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RegisterUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
}

// RegisterUserResponse mirrors the document-store insert result the
// frontend expects: InsertedID is null when the email already existed.
type RegisterUserResponse struct {
	Message    string     `json:"message,omitempty"`
	InsertedID *uuid.UUID `json:"insertedId"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type TutorCheckResponse struct {
	Tutor bool `json:"tutor"`
}
