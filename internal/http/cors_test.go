package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Empty", input: "", expected: nil},
		{name: "OnlySeparators", input: " , ,", expected: nil},
		{
			name:     "TrimsWhitespace",
			input:    " https://panel.tienda.test , https://admin.tienda.test ",
			expected: []string{"https://panel.tienda.test", "https://admin.tienda.test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOrigins(tt.input))
		})
	}
}

func TestCreateCORSMiddleware(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://panel.tienda.test", discardLogger()))
	})

	t.Run("EnabledWithoutOrigins", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, " , ", discardLogger()))
	})

	t.Run("Enabled", func(t *testing.T) {
		assert.NotNil(t, createCORSMiddleware(true, "https://panel.tienda.test", discardLogger()))
	})
}

func TestCORSConfig(t *testing.T) {
	cfg := corsConfig([]string{"https://panel.tienda.test"})

	assert.Contains(t, cfg.ExposeHeaders, "Retry-After")
	assert.Contains(t, cfg.ExposeHeaders, "X-Request-Id")
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
	assert.False(t, cfg.AllowCredentials)
	assert.NotContains(t, cfg.AllowMethods, http.MethodPatch)
}

func newCORSRouter(t *testing.T) *gin.Engine {
	t.Helper()
	middleware := createCORSMiddleware(true, "https://panel.tienda.test", discardLogger())
	require.NotNil(t, middleware)

	router := gin.New()
	router.Use(middleware)
	router.POST("/categorias", func(c *gin.Context) {
		c.Header("Retry-After", "1")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate_limit_exceeded"})
	})
	return router
}

func TestCORS_ActualRequest(t *testing.T) {
	router := newCORSRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categorias", nil)
	req.Header.Set("Origin", "https://panel.tienda.test")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "https://panel.tienda.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Retry-After")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	router := newCORSRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/categorias", nil)
	req.Header.Set("Origin", "https://panel.tienda.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	router := newCORSRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categorias", nil)
	req.Header.Set("Origin", "https://evil.test")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
