package services

import (
	"errors"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementService struct {
	db *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{db: db}
}

func (s *AnnouncementService) Create(req *dto.AnnouncementRequest) (*models.Announcement, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}

	announcement := models.Announcement{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.db.Create(&announcement).Error; err != nil {
		return nil, err
	}

	return &announcement, nil
}

func (s *AnnouncementService) List() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := s.db.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}
