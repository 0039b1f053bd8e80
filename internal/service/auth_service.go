package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

type TokenIssuer func(subject string, ttl time.Duration) (token string, expiresAt time.Time, err error)

// AuthService is the admin console gate: a single shared password
// exchanged for a short-lived token.
type AuthService struct {
	password     string
	passwordHash []byte
	ttl          time.Duration
	issue        TokenIssuer
}

func NewAuthService(password, passwordHash string, ttl time.Duration, issue TokenIssuer) *AuthService {
	return &AuthService{
		password:     password,
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		issue:        issue,
	}
}

func (s *AuthService) Login(password string) (domain.TokenResponse, error) {
	if password == "" || !s.check(password) {
		return domain.TokenResponse{}, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issue("admin", s.ttl)
	if err != nil {
		return domain.TokenResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return domain.TokenResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

// check prefers the bcrypt hash when one is configured.
func (s *AuthService) check(password string) bool {
	if len(s.passwordHash) > 0 {
		return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) == 1
}
