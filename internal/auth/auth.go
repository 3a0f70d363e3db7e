// Package auth gates the destructive admin surface. The admin password is
// held only as a bcrypt hash in configuration; a successful login issues a
// short-lived JWT the admin pages present as a Bearer token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// Service verifies the shared admin password and manages session tokens.
type Service struct {
	passwordHash  []byte
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(passwordHash, secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		passwordHash:  []byte(passwordHash),
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// VerifyPassword compares the candidate against the configured hash.
func (s *Service) VerifyPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return ErrInvalidPassword
	}

	return nil
}

// Login verifies the password and issues a session token.
func (s *Service) Login(password string) (string, error) {
	if err := s.VerifyPassword(password); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// ValidateToken checks a session token's signature and expiry.
func (s *Service) ValidateToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return s.secretKey, nil
		})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
