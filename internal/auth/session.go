package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"invoice-dashboard-backend/internal/models"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

var ErrInvalidSession = errors.New("invalid or expired session")

// SessionClaims are the JWT claims of a dashboard session.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies HS256 session tokens.
type SessionManager struct {
	secretKey []byte
	ttl       time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secretKey: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session token for the given user.
func (m *SessionManager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token.
func (m *SessionManager) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
