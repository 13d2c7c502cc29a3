package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardian-news-api/api/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardLogger struct{ count int }

func (d *discardLogger) Debug(string, map[string]interface{}) {}
func (d *discardLogger) Info(string, map[string]interface{})  { d.count++ }
func (d *discardLogger) Warn(string, map[string]interface{})  { d.count++ }
func (d *discardLogger) Error(string, map[string]interface{}) { d.count++ }

func TestNewAPI_Info(t *testing.T) {
	api, router := NewAPI()
	require.NotNil(t, api)
	require.NotNil(t, router)

	info := api.OpenAPI().Info
	assert.Equal(t, "Guardian News API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/docs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("OPTIONS", "/news", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPIWithMiddleware(t *testing.T) {
	logger := &discardLogger{}
	_, router := NewAPIWithMiddleware(APIConfig{
		Logger:      logger,
		RateLimiter: middleware.NewRateLimiter(1, 1, time.Minute),
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("GET", "/openapi.json", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	assert.Equal(t, 2, logger.count)
}
