package services

import (
	"errors"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrNotBooked     = errors.New("session was not booked by you")
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create stores a review; only students who booked the session may review it.
func (s *ReviewService) Create(studentEmail string, req *dto.ReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, errors.New("invalid session id")
	}

	var booking models.BookedSession
	if err := s.db.Where("session_id = ? AND student_email = ?", sessionID, studentEmail).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotBooked
		}
		return nil, err
	}

	review := models.Review{
		ID:           uuid.New(),
		SessionID:    sessionID,
		StudentEmail: studentEmail,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

func (s *ReviewService) ListBySession(sessionID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
