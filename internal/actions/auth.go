package actions

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"invoice-dashboard-backend/internal/auth"
)

// Sign-in failure messages shown on the login form.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSignInFailed       = "Something went wrong."
)

// SignInProvider verifies a credentials payload and establishes a session,
// returning the session token. Recognized failures are *auth.Error values.
type SignInProvider interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// AuthActions maps sign-in failures to the short messages the login form
// renders.
type AuthActions struct {
	provider SignInProvider
	logger   *zap.Logger
}

func NewAuthActions(provider SignInProvider, logger *zap.Logger) *AuthActions {
	return &AuthActions{provider: provider, logger: logger}
}

// Authenticate delegates credential verification to the provider. On success
// it returns the session token and an empty message. Recognized
// authentication failures come back as a user-facing message; anything else
// is returned as an error for upstream handling and logging.
func (a *AuthActions) Authenticate(ctx context.Context, email, password string) (token, message string, err error) {
	token, err = a.provider.SignIn(ctx, email, password)
	if err == nil {
		return token, "", nil
	}

	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		return "", "", err
	}

	a.logger.Info("sign-in rejected",
		zap.String("kind", string(authErr.Kind)), zap.Error(authErr.Err))
	switch authErr.Kind {
	case auth.KindCredentialsSignin:
		return "", MsgInvalidCredentials, nil
	default:
		return "", MsgSignInFailed, nil
	}
}
