package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"invoice-dashboard-backend/internal/actions"
	"invoice-dashboard-backend/internal/auth"
)

// AuthHandler exposes the credentials sign-in and sign-out endpoints.
type AuthHandler struct {
	actions  *actions.AuthActions
	sessions *auth.SessionManager
	logger   *zap.Logger
}

func NewAuthHandler(a *actions.AuthActions, sessions *auth.SessionManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{actions: a, sessions: sessions, logger: logger}
}

// Login verifies the posted credentials. Success sets the session cookie and
// redirects to the dashboard; recognized failures re-render the login form
// with a short message; anything else is a plain 500.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, message, err := h.actions.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		h.logger.Error("sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if message != "" {
		c.JSON(http.StatusUnauthorized, actions.State{Message: message})
		return
	}

	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session cookie and lands on the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
