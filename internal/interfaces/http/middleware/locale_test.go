package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func localeFor(t *testing.T, defaultLocale, url string) string {
	t.Helper()

	gin.SetMode(gin.TestMode)
	cfg := &config.Config{App: config.AppConfig{DefaultLocale: defaultLocale}}

	var got string
	router := gin.New()
	router.Use(Locale(cfg))
	router.GET("/", func(c *gin.Context) {
		got = GetLocale(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLocale_QueryParameter(t *testing.T) {
	assert.Equal(t, "en", localeFor(t, "ar", "/?lang=en"))
	assert.Equal(t, "ar", localeFor(t, "en", "/?lang=ar"))
}

func TestLocale_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "ar", localeFor(t, "ar", "/"))
	assert.Equal(t, "en", localeFor(t, "en", "/?lang=fr"))
}

func TestGetLocale_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "ar", GetLocale(c))
}
