// Package token issues and verifies the signed bearer tokens that carry a
// student identity between requests. Tokens are stateless: validity is a
// signature plus expiry check, with no server-side session state.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Subject is the authenticated identity a verified token resolves to.
type Subject struct {
	StudentID int64
	Email     string
}

// Claims binds the registered JWT claims to the student identity.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Service signs and verifies access tokens with a process-wide secret.
// Rotating the secret invalidates all outstanding tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a token service. The secret and TTL are injected so
// tests can substitute their own.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue produces a signed token binding the student id and email.
func (s *Service) Issue(studentID int64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(studentID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the token subject. Both
// failure modes map to 401 at the boundary; expiry keeps a distinct message.
func (s *Service) Verify(tokenString string) (Subject, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Subject{}, apperr.Unauthorized("token expired")
		}
		return Subject{}, apperr.Unauthorized("invalid token")
	}
	if !tok.Valid {
		return Subject{}, apperr.Unauthorized("invalid token")
	}

	studentID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || studentID <= 0 {
		return Subject{}, apperr.Unauthorized("invalid token")
	}

	return Subject{StudentID: studentID, Email: claims.Email}, nil
}
