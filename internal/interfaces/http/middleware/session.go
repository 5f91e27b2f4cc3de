// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session_id"

// CartSession attaches a shopper session id to the request, minting a new
// cookie when none is present. The cart and checkout state live under this
// id for the session's lifetime.
func CartSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionKey)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionKey, sessionID, cfg.Cart.CookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the shopper session id from gin context
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(sessionKey); exists {
		if s, ok := sessionID.(string); ok {
			return s
		}
	}
	return ""
}
