package services

import (
	"errors"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoteNotFound = errors.New("note not found or not owned by you")

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

func (s *NoteService) Create(email string, req *dto.NoteRequest) (*models.Note, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	note := models.Note{
		ID:          uuid.New(),
		Email:       email,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.db.Create(&note).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

func (s *NoteService) ListByOwner(email string) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.Where("email = ?", email).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// Update edits a note only when it belongs to the requesting user.
func (s *NoteService) Update(id uuid.UUID, email string, req *dto.NoteRequest) error {
	result := s.db.Model(&models.Note{}).
		Where("id = ? AND email = ?", id, email).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (s *NoteService) Delete(id uuid.UUID, email string) error {
	result := s.db.Where("id = ? AND email = ?", id, email).Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
