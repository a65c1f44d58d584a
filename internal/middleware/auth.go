package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"invoice-dashboard-backend/internal/auth"
)

// DashboardGate sends unauthenticated requests for /dashboard/* to the login
// page and signed-in visitors of /login straight to the dashboard.
func DashboardGate(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(auth.SessionCookie)
		loggedIn := false
		if token != "" {
			if _, err := sessions.Verify(token); err == nil {
				loggedIn = true
			}
		}

		path := c.Request.URL.Path
		switch {
		case strings.HasPrefix(path, "/dashboard"):
			if !loggedIn {
				c.Redirect(http.StatusSeeOther, "/login")
				c.Abort()
				return
			}
		case path == "/login" && loggedIn:
			c.Redirect(http.StatusSeeOther, "/dashboard")
			c.Abort()
			return
		}

		c.Next()
	}
}
