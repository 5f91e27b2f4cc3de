// internal/interfaces/http/middleware/locale.go
package middleware

import (
	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/gin-gonic/gin"
)

const localeKey = "locale"

// Locale resolves the active display language from the `lang` query
// parameter. Only `ar` and `en` are recognized; anything else falls back to
// the configured default.
func Locale(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Query("lang")
		if locale != "ar" && locale != "en" {
			locale = cfg.App.DefaultLocale
		}

		c.Set(localeKey, locale)
		c.Next()
	}
}

// GetLocale extracts the active locale from gin context
func GetLocale(c *gin.Context) string {
	if locale, exists := c.Get(localeKey); exists {
		if s, ok := locale.(string); ok {
			return s
		}
	}
	return "ar"
}
