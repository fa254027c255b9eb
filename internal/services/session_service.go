package services

import (
	"errors"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("study session not found")
	ErrNotSessionOwner = errors.New("study session not owned by you")
	ErrNotRejected     = errors.New("only rejected sessions can be resubmitted")
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) Create(req *dto.CreateSessionRequest) (*models.StudySession, error) {
	if req.Title == "" || req.TutorEmail == "" {
		return nil, errors.New("title and tutorEmail are required")
	}

	session := models.StudySession{
		ID:                uuid.New(),
		Title:             req.Title,
		TutorName:         req.TutorName,
		TutorEmail:        req.TutorEmail,
		Description:       req.Description,
		RegistrationStart: req.RegistrationStart,
		RegistrationEnd:   req.RegistrationEnd,
		ClassStart:        req.ClassStart,
		ClassEnd:          req.ClassEnd,
		Duration:          req.Duration,
		Status:            models.SessionPending,
	}

	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// List returns sessions newest first, optionally filtered by status.
func (s *SessionService) List(status string, page, limit int) ([]models.StudySession, int64, error) {
	var sessions []models.StudySession
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&models.StudySession{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	query.Count(&total)

	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&sessions).Error

	return sessions, total, err
}

func (s *SessionService) Get(id uuid.UUID) (*models.StudySession, error) {
	var session models.StudySession
	if err := s.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Approve sets status and registration fee in a single update so a partial
// approval can never be observed.
func (s *SessionService) Approve(id uuid.UUID, regFee float64) error {
	result := s.db.Model(&models.StudySession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           models.SessionApproved,
			"registration_fee": regFee,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *SessionService) Reject(id uuid.UUID, reason, feedback string) error {
	result := s.db.Model(&models.StudySession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           models.SessionRejected,
			"rejection_reason": reason,
			"feedback":         feedback,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Resubmit puts a tutor's own rejected session back in the approval queue.
func (s *SessionService) Resubmit(id uuid.UUID, tutorEmail string) error {
	var session models.StudySession
	if err := s.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	if session.TutorEmail != tutorEmail {
		return ErrNotSessionOwner
	}
	if session.Status != models.SessionRejected {
		return ErrNotRejected
	}

	return s.db.Model(&session).Updates(map[string]interface{}{
		"status":           models.SessionPending,
		"rejection_reason": "",
		"feedback":         "",
	}).Error
}

func (s *SessionService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.StudySession{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
