package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/connect2study/server/internal/config"
	"github.com/connect2study/server/internal/handlers"
	"github.com/connect2study/server/internal/models"
	"github.com/connect2study/server/internal/payments"
	"github.com/connect2study/server/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	cfg    *config.Config
	tokens *services.TokenService
}

// newTestEnv wires the full route table against an in-memory database and
// the given payment gateway URL, mirroring the wiring in cmd/server.
func newTestEnv(t *testing.T, gatewayURL string) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:routes%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.StudySession{}, &models.BookedSession{},
		&models.Note{}, &models.Material{}, &models.Review{},
		&models.Payment{}, &models.Announcement{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTExpiry:       time.Hour,
		PaymentAPIURL:   gatewayURL,
		PaymentCurrency: "usd",
	}

	tokenService := services.NewTokenService(cfg)
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db)
	bookingService := services.NewBookingService(db)
	noteService := services.NewNoteService(db)
	materialService := services.NewMaterialService(db)
	reviewService := services.NewReviewService(db)
	announcementService := services.NewAnnouncementService(db)
	gateway := payments.NewClient(gatewayURL, "sk_test", cfg.PaymentCurrency)
	paymentService := services.NewPaymentService(db, gateway, cfg.PaymentCurrency)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(tokenService, userService),
		handlers.NewHealthHandler(db),
		handlers.NewUserHandler(userService),
		handlers.NewSessionHandler(sessionService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewNoteHandler(noteService),
		handlers.NewMaterialHandler(materialService),
		handlers.NewReviewHandler(reviewService),
		handlers.NewPaymentHandler(paymentService),
		handlers.NewAnnouncementHandler(announcementService),
	)

	return &testEnv{app: app, db: db, cfg: cfg, tokens: tokenService}
}

func (e *testEnv) seedUser(t *testing.T, email, role string) string {
	t.Helper()

	user := models.User{ID: uuid.New(), Email: email, Name: email, Role: role}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	token, err := e.tokens.Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func (e *testEnv) createApprovedSession(t *testing.T, adminToken string, fee any) uuid.UUID {
	t.Helper()

	resp := e.request(t, fiber.MethodPost, "/study-sessions", "", map[string]any{
		"title":      "Algebra crash course",
		"tutorEmail": "tutor@x.com",
		"tutorName":  "Tutor",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create session: status %d", resp.StatusCode)
	}
	session := decode[models.StudySession](t, resp)

	resp = e.request(t, fiber.MethodPatch, "/study-session-approved/"+session.ID.String(),
		adminToken, map[string]any{"regFee": fee})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("approve session: status %d", resp.StatusCode)
	}
	return session.ID
}

func TestRegisterIsIdempotent(t *testing.T) {
	env := newTestEnv(t, "http://unused")

	body := map[string]string{"email": "new@x.com", "name": "New User"}

	resp := env.request(t, fiber.MethodPost, "/users", "", body)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first register: status %d", resp.StatusCode)
	}
	first := decode[map[string]any](t, resp)
	if first["insertedId"] == nil {
		t.Error("first register: insertedId is null")
	}

	resp = env.request(t, fiber.MethodPost, "/users", "", body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("second register: status %d", resp.StatusCode)
	}
	second := decode[map[string]any](t, resp)
	if second["insertedId"] != nil {
		t.Error("second register: insertedId should be null")
	}
	if second["message"] != "User already exist" {
		t.Errorf("second register message = %v", second["message"])
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env := newTestEnv(t, "http://unused")
	studentToken := env.seedUser(t, "student@x.com", models.RoleStudent)
	adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)

	resp := env.request(t, fiber.MethodGet, "/allUsers", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", resp.StatusCode)
	}

	resp = env.request(t, fiber.MethodGet, "/allUsers", studentToken, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("student token: status %d, want 403", resp.StatusCode)
	}

	resp = env.request(t, fiber.MethodGet, "/allUsers", adminToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("admin token: status %d, want 200", resp.StatusCode)
	}
}

func TestSelfScopedRouteRejectsOtherEmails(t *testing.T) {
	env := newTestEnv(t, "http://unused")
	token := env.seedUser(t, "me@x.com", models.RoleStudent)

	resp := env.request(t, fiber.MethodGet, "/student-notes/me@x.com", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("own notes: status %d, want 200", resp.StatusCode)
	}

	resp = env.request(t, fiber.MethodGet, "/student-notes/you@x.com", token, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("foreign notes: status %d, want 403", resp.StatusCode)
	}
}

func TestApproveAcceptsStringFee(t *testing.T) {
	env := newTestEnv(t, "http://unused")
	adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)

	id := env.createApprovedSession(t, adminToken, "49.99")

	resp := env.request(t, fiber.MethodGet, "/study-sessions/"+id.String(), "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("get session: status %d", resp.StatusCode)
	}
	session := decode[models.StudySession](t, resp)
	if session.Status != models.SessionApproved {
		t.Errorf("status = %q, want approved", session.Status)
	}
	if session.RegistrationFee != 49.99 {
		t.Errorf("fee = %v, want 49.99", session.RegistrationFee)
	}
}

func TestBookingConflictOnDuplicate(t *testing.T) {
	env := newTestEnv(t, "http://unused")
	adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)
	studentToken := env.seedUser(t, "student@x.com", models.RoleStudent)

	id := env.createApprovedSession(t, adminToken, 30)
	body := map[string]string{"sessionId": id.String()}

	resp := env.request(t, fiber.MethodPost, "/student-booked-session", studentToken, body)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first booking: status %d", resp.StatusCode)
	}

	resp = env.request(t, fiber.MethodPost, "/student-booked-session", studentToken, body)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("duplicate booking: status %d, want 409", resp.StatusCode)
	}
}

func TestPaymentIntentSendsMinorUnits(t *testing.T) {
	var gotAmount atomic.Value
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotAmount.Store(r.PostForm.Get("amount"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payments.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"})
	}))
	defer gateway.Close()

	env := newTestEnv(t, gateway.URL)
	studentToken := env.seedUser(t, "student@x.com", models.RoleStudent)

	resp := env.request(t, fiber.MethodPost, "/create-payment-intent", studentToken,
		map[string]any{"price": 20})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("create intent: status %d", resp.StatusCode)
	}
	out := decode[map[string]any](t, resp)
	if out["clientSecret"] != "pi_1_secret" {
		t.Errorf("clientSecret = %v", out["clientSecret"])
	}
	if got, _ := gotAmount.Load().(string); got != "2000" {
		t.Errorf("gateway amount = %q, want 2000", got)
	}
}

func TestRecordPaymentMarksBookingPaid(t *testing.T) {
	env := newTestEnv(t, "http://unused")
	adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)
	studentToken := env.seedUser(t, "student@x.com", models.RoleStudent)

	id := env.createApprovedSession(t, adminToken, 25)

	resp := env.request(t, fiber.MethodPost, "/student-booked-session", studentToken,
		map[string]string{"sessionId": id.String()})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("booking: status %d", resp.StatusCode)
	}

	resp = env.request(t, fiber.MethodPost, "/payments", studentToken, map[string]any{
		"sessionId": id.String(),
		"amount":    2500,
		"intentId":  "pi_1",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("record payment: status %d", resp.StatusCode)
	}

	resp = env.request(t, fiber.MethodGet, "/student-booked-sessions/student@x.com", studentToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list bookings: status %d", resp.StatusCode)
	}
	bookings := decode[[]models.BookedSession](t, resp)
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}
	if bookings[0].PaymentStatus != models.BookingPaid {
		t.Errorf("payment status = %q, want paid", bookings[0].PaymentStatus)
	}

	resp = env.request(t, fiber.MethodGet, "/payments/student@x.com", studentToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list payments: status %d", resp.StatusCode)
	}
	paid := decode[[]models.Payment](t, resp)
	if len(paid) != 1 || paid[0].Amount != 2500 {
		t.Fatalf("unexpected payments: %+v", paid)
	}
}

func TestRoleCheckEndpoints(t *testing.T) {
	env := newTestEnv(t, "http://unused")
	adminToken := env.seedUser(t, "admin@x.com", models.RoleAdmin)
	studentToken := env.seedUser(t, "student@x.com", models.RoleStudent)

	resp := env.request(t, fiber.MethodGet, "/users/admin/admin@x.com", adminToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin check: status %d", resp.StatusCode)
	}
	if out := decode[map[string]bool](t, resp); !out["admin"] {
		t.Error("admin check: admin = false, want true")
	}

	resp = env.request(t, fiber.MethodGet, "/users/tutor/student@x.com", studentToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("tutor check: status %d", resp.StatusCode)
	}
	if out := decode[map[string]bool](t, resp); out["tutor"] {
		t.Error("tutor check: tutor = true, want false")
	}
}
