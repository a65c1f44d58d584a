package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

type fakeUserStore struct {
	users map[string]*models.User
	err   error
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func newTestProvider(t *testing.T) (*CredentialsProvider, *fakeUserStore) {
	t.Helper()

	hash, err := HashPassword("123456")
	require.NoError(t, err)

	store := &fakeUserStore{users: map[string]*models.User{
		"user@nextmail.com": {
			ID:           uuid.New(),
			Email:        "user@nextmail.com",
			PasswordHash: hash,
		},
	}}
	sessions := NewSessionManager("test-secret", time.Hour)
	return NewCredentialsProvider(store, sessions, zap.NewNop()), store
}

func TestCredentialsProviderSignIn(t *testing.T) {
	t.Run("valid credentials yield a verifiable session token", func(t *testing.T) {
		provider, _ := newTestProvider(t)

		token, err := provider.SignIn(context.Background(), "user@nextmail.com", "123456")

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := NewSessionManager("test-secret", time.Hour).Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user@nextmail.com", claims.Email)
	})

	t.Run("wrong password is a CredentialsSignin error", func(t *testing.T) {
		provider, _ := newTestProvider(t)

		_, err := provider.SignIn(context.Background(), "user@nextmail.com", "654321")

		var authErr *Error
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, KindCredentialsSignin, authErr.Kind)
	})

	t.Run("unknown email is a CredentialsSignin error", func(t *testing.T) {
		provider, _ := newTestProvider(t)

		_, err := provider.SignIn(context.Background(), "nobody@nextmail.com", "123456")

		var authErr *Error
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, KindCredentialsSignin, authErr.Kind)
	})

	t.Run("empty credentials are rejected without a lookup", func(t *testing.T) {
		provider, _ := newTestProvider(t)

		_, err := provider.SignIn(context.Background(), "", "")

		var authErr *Error
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, KindCredentialsSignin, authErr.Kind)
	})

	t.Run("store failures propagate untagged", func(t *testing.T) {
		provider, store := newTestProvider(t)
		store.err = errors.New("connection refused")

		_, err := provider.SignIn(context.Background(), "user@nextmail.com", "123456")

		require.Error(t, err)
		var authErr *Error
		assert.False(t, errors.As(err, &authErr))
	})
}

func TestSessionManager(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "user@nextmail.com"}

	t.Run("issued tokens verify", func(t *testing.T) {
		m := NewSessionManager("secret", time.Hour)

		token, err := m.Issue(user)
		require.NoError(t, err)

		claims, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("tokens signed with another secret are rejected", func(t *testing.T) {
		token, err := NewSessionManager("secret-a", time.Hour).Issue(user)
		require.NoError(t, err)

		_, err = NewSessionManager("secret-b", time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("expired tokens are rejected", func(t *testing.T) {
		m := NewSessionManager("secret", -time.Minute)

		token, err := m.Issue(user)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("garbage tokens are rejected", func(t *testing.T) {
		m := NewSessionManager("secret", time.Hour)

		_, err := m.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}
