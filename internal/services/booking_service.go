package services

import (
	"errors"

	"github.com/connect2study/server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDuplicateBooking = errors.New("session already booked")
	ErrSessionNotOpen   = errors.New("session is not open for booking")
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Book reserves an approved session for a student. Free sessions are marked
// paid immediately; paid sessions stay unpaid until a payment is recorded.
func (s *BookingService) Book(sessionID uuid.UUID, studentEmail string) (*models.BookedSession, error) {
	var session models.StudySession
	if err := s.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if session.Status != models.SessionApproved {
		return nil, ErrSessionNotOpen
	}

	var existing models.BookedSession
	if err := s.db.Where("session_id = ? AND student_email = ?", sessionID, studentEmail).
		First(&existing).Error; err == nil {
		return nil, ErrDuplicateBooking
	}

	paymentStatus := models.BookingUnpaid
	if session.RegistrationFee == 0 {
		paymentStatus = models.BookingPaid
	}

	booking := models.BookedSession{
		ID:            uuid.New(),
		SessionID:     sessionID,
		StudentEmail:  studentEmail,
		TutorEmail:    session.TutorEmail,
		SessionTitle:  session.Title,
		PaymentStatus: paymentStatus,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

func (s *BookingService) ListByStudent(email string) ([]models.BookedSession, error) {
	var bookings []models.BookedSession
	err := s.db.Where("student_email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
