package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/connect2study/server/internal/config"
	"github.com/connect2study/server/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:mw%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
}

func signToken(t *testing.T, secret, email string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestJWTProtected(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/secure", JWTProtected(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing token", "", fiber.StatusUnauthorized},
		{"garbage token", "not-a-jwt", fiber.StatusUnauthorized},
		{"wrong secret", signToken(t, "other-secret", "s@x.com", time.Hour), fiber.StatusUnauthorized},
		{"expired token", signToken(t, cfg.JWTSecret, "s@x.com", -time.Minute), fiber.StatusUnauthorized},
		{"valid token", signToken(t, cfg.JWTSecret, "s@x.com", time.Hour), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, "/secure", tt.token)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestSelfScoped(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/users/:email", JWTProtected(cfg), SelfScoped(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	token := signToken(t, cfg.JWTSecret, "s@x.com", time.Hour)

	resp := doRequest(t, app, "/users/s@x.com", token)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("own email: status = %d, want 200", resp.StatusCode)
	}

	resp = doRequest(t, app, "/users/other@x.com", token)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("foreign email: status = %d, want 403", resp.StatusCode)
	}
}

func TestRequireRole(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)

	for email, role := range map[string]string{
		"admin@x.com":   models.RoleAdmin,
		"student@x.com": models.RoleStudent,
	} {
		user := models.User{ID: uuid.New(), Email: email, Name: email, Role: role}
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	app := fiber.New()
	app.Get("/admin-only", JWTProtected(cfg), RequireRole(db, models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "admin@x.com", fiber.StatusOK},
		{"student rejected", "student@x.com", fiber.StatusForbidden},
		{"unknown user rejected", "ghost@x.com", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, cfg.JWTSecret, tt.email, time.Hour)
			resp := doRequest(t, app, "/admin-only", token)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
