package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	sessionMaxAge = 30 * 24 * 60 * 60
)

// SessionMiddleware gives every browser a stable session id cookie. The id
// scopes the persisted cart, the way localStorage scoped it in the page this
// API serves.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}

// SessionID returns the session id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
