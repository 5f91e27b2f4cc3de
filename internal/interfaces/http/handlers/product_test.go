package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/amrhamedpage/shams-web-platform/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	cfg := &config.Config{App: config.AppConfig{DefaultLocale: "ar"}}

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	// Nil DB: the catalog serves fixture data
	handler := NewProductHandler(nil, cfg, logger)

	router := gin.New()
	router.Use(middleware.Locale(cfg))
	router.GET("/products", handler.GetProducts)
	router.GET("/products/:id", handler.GetProduct)
	router.GET("/categories", handler.GetCategories)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestGetProducts(t *testing.T) {
	router := newProductRouter(t)

	recorder, body := doRequest(t, router, "/products")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ar", body["locale"])
	assert.Len(t, body["data"], 4)
}

func TestGetProducts_FilteredAndLocalized(t *testing.T) {
	router := newProductRouter(t)

	recorder, body := doRequest(t, router, "/products?category=Medicines&lang=en")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "en", body["locale"])

	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Panadol Advance 500mg", first["name_en"])
}

func TestGetProduct(t *testing.T) {
	router := newProductRouter(t)

	recorder, body := doRequest(t, router, "/products/2")

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Vitamin C Serum", data["name_en"])
	assert.Equal(t, float64(8500), data["price"])
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newProductRouter(t)

	recorder, body := doRequest(t, router, "/products/999")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Product not found", body["error"])
}

func TestGetCategories(t *testing.T) {
	router := newProductRouter(t)

	recorder, body := doRequest(t, router, "/categories")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, body["data"], 13)
}
