package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"invoice-dashboard-backend/internal/auth"
)

type fakeSignInProvider struct {
	token string
	err   error
}

func (p *fakeSignInProvider) SignIn(context.Context, string, string) (string, error) {
	return p.token, p.err
}

func TestAuthenticate(t *testing.T) {
	t.Run("success returns the session token and no message", func(t *testing.T) {
		a := NewAuthActions(&fakeSignInProvider{token: "tok-1"}, zap.NewNop())

		token, message, err := a.Authenticate(context.Background(), "user@nextmail.com", "123456")

		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
		assert.Empty(t, message)
	})

	t.Run("credentials mismatch maps to the invalid credentials message", func(t *testing.T) {
		provider := &fakeSignInProvider{err: &auth.Error{Kind: auth.KindCredentialsSignin}}
		a := NewAuthActions(provider, zap.NewNop())

		token, message, err := a.Authenticate(context.Background(), "user@nextmail.com", "wrong")

		require.NoError(t, err)
		assert.Empty(t, token)
		assert.Equal(t, MsgInvalidCredentials, message)
	})

	t.Run("other recognized auth failures map to the generic message", func(t *testing.T) {
		provider := &fakeSignInProvider{err: &auth.Error{Kind: auth.KindCallbackRouteError}}
		a := NewAuthActions(provider, zap.NewNop())

		_, message, err := a.Authenticate(context.Background(), "user@nextmail.com", "123456")

		require.NoError(t, err)
		assert.Equal(t, MsgSignInFailed, message)
	})

	t.Run("unrecognized failures propagate", func(t *testing.T) {
		boom := errors.New("dns lookup failed")
		a := NewAuthActions(&fakeSignInProvider{err: boom}, zap.NewNop())

		_, message, err := a.Authenticate(context.Background(), "user@nextmail.com", "123456")

		assert.Empty(t, message)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("wrapped recognized failures are still mapped", func(t *testing.T) {
		wrapped := &auth.Error{Kind: auth.KindCredentialsSignin, Err: errors.New("no such user")}
		a := NewAuthActions(&fakeSignInProvider{err: wrapped}, zap.NewNop())

		_, message, err := a.Authenticate(context.Background(), "user@nextmail.com", "123456")

		require.NoError(t, err)
		assert.Equal(t, MsgInvalidCredentials, message)
	})
}
