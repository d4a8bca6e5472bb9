package middleware

import (
	"net/http"

	"github.com/amandhingra1/charzdev-ev/auth"
	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects API calls that do not carry a live admin session.
func RequireAdmin(gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gate.Check(cookies.Store(c)) != auth.LoggedIn {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session missing or expired"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminPage sends browsers without a live session back to the login
// form on /admin.
func RequireAdminPage(gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gate.Check(cookies.Store(c)) != auth.LoggedIn {
			c.Redirect(http.StatusSeeOther, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
