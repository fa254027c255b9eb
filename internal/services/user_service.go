package services

import (
	"errors"
	"fmt"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a user on first sight of an email. A duplicate email is
// a no-op: the returned user is nil and the caller reports the sentinel
// "already exists" response instead of an error.
func (s *UserService) Register(req *dto.RegisterUserRequest) (*models.User, error) {
	if req.Email == "" {
		return nil, errors.New("email is required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, nil
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns users newest first, optionally filtered by a case-insensitive
// name/email search.
func (s *UserService) List(search string, page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&models.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error

	return users, total, err
}

func (s *UserService) Tutors() ([]models.User, error) {
	var tutors []models.User
	err := s.db.Where("role = ?", models.RoleTutor).
		Order("created_at DESC").
		Find(&tutors).Error
	return tutors, err
}

func (s *UserService) UpdateRole(id uuid.UUID, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
