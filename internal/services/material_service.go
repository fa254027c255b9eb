package services

import (
	"errors"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMaterialNotFound = errors.New("material not found")

type MaterialService struct {
	db *gorm.DB
}

func NewMaterialService(db *gorm.DB) *MaterialService {
	return &MaterialService{db: db}
}

// Create attaches a material to one of the tutor's own sessions.
func (s *MaterialService) Create(tutorEmail string, req *dto.MaterialRequest) (*models.Material, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, errors.New("invalid session id")
	}

	var session models.StudySession
	if err := s.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.TutorEmail != tutorEmail {
		return nil, ErrNotSessionOwner
	}

	material := models.Material{
		ID:         uuid.New(),
		SessionID:  sessionID,
		TutorEmail: tutorEmail,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		DriveLink:  req.DriveLink,
	}

	if err := s.db.Create(&material).Error; err != nil {
		return nil, err
	}

	return &material, nil
}

func (s *MaterialService) ListByTutor(email string) ([]models.Material, error) {
	var materials []models.Material
	err := s.db.Where("tutor_email = ?", email).
		Order("created_at DESC").
		Find(&materials).Error
	return materials, err
}

// ListForStudent returns materials for every session the student booked.
func (s *MaterialService) ListForStudent(email string) ([]models.Material, error) {
	var materials []models.Material
	sub := s.db.Model(&models.BookedSession{}).
		Select("session_id").
		Where("student_email = ?", email)
	err := s.db.Where("session_id IN (?)", sub).
		Order("created_at DESC").
		Find(&materials).Error
	return materials, err
}

func (s *MaterialService) ListAll(page, limit int) ([]models.Material, int64, error) {
	var materials []models.Material
	var total int64

	offset := (page - 1) * limit

	s.db.Model(&models.Material{}).Count(&total)

	err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&materials).Error

	return materials, total, err
}

func (s *MaterialService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Material{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}
