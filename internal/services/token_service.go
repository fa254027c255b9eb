package services

import (
	"errors"
	"time"

	"github.com/connect2study/server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues the stateless HS256 credentials the API runs on.
// There is no refresh flow; an expired token always fails closed.
type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

// Issue signs a token asserting the given email, valid for the configured
// expiry (7 days by default).
func (s *TokenService) Issue(email string) (string, error) {
	if email == "" {
		return "", errors.New("email is required")
	}

	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
