package service

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/lumenstudio/backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService authenticates the single site administrator.
type AdminAuthService interface {
	// Login checks the credentials and returns a signed session token.
	Login(email, password string) (string, error)
}

// AdminCredentials configures AdminAuthService.
type AdminCredentials struct {
	Email        string
	PasswordHash string // bcrypt
	Secret       []byte
	TTL          time.Duration
}

type adminAuthService struct {
	email  string
	hash   []byte
	secret []byte
	ttl    time.Duration
}

// NewAdminAuthService creates an AdminAuthService. With an empty email or
// hash every login fails.
func NewAdminAuthService(c AdminCredentials) AdminAuthService {
	return &adminAuthService{
		email:  strings.ToLower(strings.TrimSpace(c.Email)),
		hash:   []byte(c.PasswordHash),
		secret: c.Secret,
		ttl:    c.TTL,
	}
}

func (s *adminAuthService) Login(email, password string) (string, error) {
	if s.email == "" || len(s.hash) == 0 {
		return "", ErrInvalidCredentials
	}
	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	// Compare the password even when the email differs.
	pwErr := bcrypt.CompareHashAndPassword(s.hash, []byte(password))
	if !emailOK || pwErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := auth.CreateSessionToken(s.email, s.secret, s.ttl)
	if err != nil {
		return "", fmt.Errorf("create session token: %w", err)
	}
	return token, nil
}
