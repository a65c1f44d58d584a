package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

// UserStore looks up dashboard accounts for credential verification.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// CredentialsProvider verifies an email/password pair against the users table
// and establishes a session on success. Failures come back as tagged *Error
// values; infrastructure errors propagate untagged.
type CredentialsProvider struct {
	users    UserStore
	sessions *SessionManager
	logger   *zap.Logger
}

func NewCredentialsProvider(users UserStore, sessions *SessionManager, logger *zap.Logger) *CredentialsProvider {
	return &CredentialsProvider{users: users, sessions: sessions, logger: logger}
}

// SignIn verifies the credentials and returns a session token.
func (p *CredentialsProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", &Error{Kind: KindCredentialsSignin, Err: errors.New("missing credentials")}
	}

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &Error{Kind: KindCredentialsSignin, Err: err}
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", &Error{Kind: KindCredentialsSignin, Err: err}
	}

	token, err := p.sessions.Issue(user)
	if err != nil {
		p.logger.Error("failed to issue session token", zap.String("email", email), zap.Error(err))
		return "", &Error{Kind: KindCallbackRouteError, Err: err}
	}

	p.logger.Info("user signed in", zap.String("user_id", user.ID.String()))
	return token, nil
}

// HashPassword hashes a plaintext password for storage in the users table.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
