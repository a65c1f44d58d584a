package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"invoice-dashboard-backend/internal/actions"
	"invoice-dashboard-backend/internal/auth"
)

type stubSignInProvider struct {
	token string
	err   error
}

func (p *stubSignInProvider) SignIn(context.Context, string, string) (string, error) {
	return p.token, p.err
}

func newLoginRouter(provider actions.SignInProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessionManager("test-secret", time.Hour)
	h := NewAuthHandler(actions.NewAuthActions(provider, zap.NewNop()), sessions, zap.NewNop())

	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	return r
}

func login(r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	t.Run("success sets the session cookie and redirects to the dashboard", func(t *testing.T) {
		r := newLoginRouter(&stubSignInProvider{token: "tok-1"})

		w := login(r, "user@nextmail.com", "123456")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.SessionCookie, cookies[0].Name)
		assert.Equal(t, "tok-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("invalid credentials render the short message", func(t *testing.T) {
		provider := &stubSignInProvider{err: &auth.Error{Kind: auth.KindCredentialsSignin}}
		r := newLoginRouter(provider)

		w := login(r, "user@nextmail.com", "wrong")

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var state actions.State
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, "Invalid credentials.", state.Message)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("other recognized failures render the generic message", func(t *testing.T) {
		provider := &stubSignInProvider{err: &auth.Error{Kind: auth.KindCallbackRouteError}}
		r := newLoginRouter(provider)

		w := login(r, "user@nextmail.com", "123456")

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var state actions.State
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
		assert.Equal(t, "Something went wrong.", state.Message)
	})

	t.Run("infrastructure failures surface as 500", func(t *testing.T) {
		r := newLoginRouter(&stubSignInProvider{err: errors.New("dns lookup failed")})

		w := login(r, "user@nextmail.com", "123456")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLogout(t *testing.T) {
	r := newLoginRouter(&stubSignInProvider{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
