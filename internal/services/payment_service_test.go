package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/connect2study/server/internal/payments"
)

func newFakeGateway(t *testing.T, wantAmount string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != wantAmount {
			t.Errorf("gateway amount = %q, want %q", got, wantAmount)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payments.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"})
	}))
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	ts := newFakeGateway(t, "2000")
	defer ts.Close()

	svc := NewPaymentService(newTestDB(t), payments.NewClient(ts.URL, "sk", "usd"), "usd")

	intent, err := svc.CreateIntent(context.Background(), 20)
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if intent.ClientSecret != "pi_1_secret" {
		t.Errorf("client secret = %q", intent.ClientSecret)
	}
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := NewPaymentService(newTestDB(t), payments.NewClient("http://unused", "sk", "usd"), "usd")

	if _, err := svc.CreateIntent(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero price")
	}
}

func TestRecordMarksBookingPaid(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	bookings := NewBookingService(db)
	svc := NewPaymentService(db, nil, "usd")

	session := seedApprovedSession(t, sessions, 25)
	booking, err := bookings.Book(session.ID, "s@x.com")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if booking.PaymentStatus != models.BookingUnpaid {
		t.Fatalf("booking starts %q, want unpaid", booking.PaymentStatus)
	}

	payment, err := svc.Record("s@x.com", &dto.RecordPaymentRequest{
		SessionID: session.ID.String(),
		Amount:    2500,
		IntentID:  "pi_1",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if payment.Amount != 2500 {
		t.Errorf("amount = %d, want 2500", payment.Amount)
	}

	var got models.BookedSession
	if err := db.First(&got, "id = ?", booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if got.PaymentStatus != models.BookingPaid {
		t.Errorf("booking status = %q, want paid", got.PaymentStatus)
	}

	list, err := svc.ListByStudent("s@x.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].IntentID != "pi_1" {
		t.Fatalf("unexpected payments: %+v", list)
	}
}

func TestOverviewSumsRevenue(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	bookings := NewBookingService(db)
	svc := NewPaymentService(db, nil, "usd")

	session := seedApprovedSession(t, sessions, 10)
	if _, err := bookings.Book(session.ID, "s@x.com"); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := svc.Record("s@x.com", &dto.RecordPaymentRequest{
		SessionID: session.ID.String(), Amount: 1000, IntentID: "pi_a",
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	overview, err := svc.Overview()
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.Sessions != 1 || overview.Bookings != 1 {
		t.Errorf("counts = %+v", overview)
	}
	if overview.TotalRevenue != 10 {
		t.Errorf("revenue = %v, want 10", overview.TotalRevenue)
	}
}
