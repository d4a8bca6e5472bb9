package adminController

import (
	"errors"
	"net/http"

	"github.com/amandhingra1/charzdev-ev/auth"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login handles POST /api/admin/login. It answers only after the gate's
// simulated delay.
func Login(gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state, err := gate.Login(c.Request.Context(), cookies.Store(c), req.Username, req.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "state": state.String()})
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": state.String()})
	}
}

func Logout(gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate.Logout(cookies.Store(c))
		c.JSON(http.StatusOK, gin.H{"state": auth.LoggedOut.String()})
	}
}

// GetSession reports the caller's gate state. An expired session is cleared
// as a side effect.
func GetSession(gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := gate.Check(cookies.Store(c))
		c.JSON(http.StatusOK, gin.H{
			"state":         state.String(),
			"authenticated": state == auth.LoggedIn,
		})
	}
}

func GetStats(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Stats())
	}
}
