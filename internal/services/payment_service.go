package services

import (
	"context"
	"errors"
	"math"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/connect2study/server/internal/payments"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidPrice = errors.New("price must be positive")

type PaymentService struct {
	db       *gorm.DB
	gateway  *payments.Client
	currency string
}

func NewPaymentService(db *gorm.DB, gateway *payments.Client, currency string) *PaymentService {
	return &PaymentService{db: db, gateway: gateway, currency: currency}
}

// CreateIntent converts a major-unit price (e.g. 20 → 2000 cents) and asks
// the gateway for a payment intent.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (*payments.Intent, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	amount := int64(math.Round(price * 100))
	return s.gateway.CreateIntent(ctx, amount)
}

// Record stores a completed payment and marks the matching booking paid.
func (s *PaymentService) Record(studentEmail string, req *dto.RecordPaymentRequest) (*models.Payment, error) {
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, errors.New("invalid session id")
	}

	payment := models.Payment{
		ID:           uuid.New(),
		StudentEmail: studentEmail,
		SessionID:    sessionID,
		Amount:       int64(math.Round(req.Amount.Float64())),
		Currency:     s.currency,
		IntentID:     req.IntentID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Model(&models.BookedSession{}).
			Where("session_id = ? AND student_email = ?", sessionID, studentEmail).
			Update("payment_status", models.BookingPaid).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (s *PaymentService) ListByStudent(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("student_email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// Overview aggregates counts and revenue for the admin dashboard.
func (s *PaymentService) Overview() (*dto.AdminOverviewResponse, error) {
	var out dto.AdminOverviewResponse

	s.db.Model(&models.User{}).Count(&out.Users)
	s.db.Model(&models.StudySession{}).Count(&out.Sessions)
	s.db.Model(&models.BookedSession{}).Count(&out.Bookings)
	s.db.Model(&models.Material{}).Count(&out.Materials)

	var totalMinor int64
	row := s.db.Model(&models.Payment{}).Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&totalMinor); err != nil {
		return nil, err
	}
	out.TotalRevenue = float64(totalMinor) / 100

	return &out, nil
}
