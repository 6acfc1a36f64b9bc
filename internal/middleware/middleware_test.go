package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-minutes/config"
	"meeting-minutes/internal/middleware"
	"meeting-minutes/pkg/log"
)

func newEngine(mw middleware.Middleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.CORS())
	handlers := append(extra, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	r.GET("/x", handlers...)
	r.POST("/x", handlers...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), config.CORSConfig{}, config.UploadConfig{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(middleware.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
}

func TestCORS(t *testing.T) {
	r := newEngine(middleware.New(log.NewNop(), config.CORSConfig{AllowedOrigin: "http://localhost:5173"}, config.UploadConfig{}))

	t.Run("Allowed Origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Other Origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	mw := middleware.New(log.NewNop(), config.CORSConfig{}, config.UploadConfig{RateLimitPerMin: 1})
	r := newEngine(mw, mw.RateLimit())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), config.CORSConfig{}, config.UploadConfig{})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitForwardedFor(t *testing.T) {
	send := func(r *gin.Engine, n int) int {
		allowed := 0
		for i := 0; i < n; i++ {
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			req.RemoteAddr = "10.0.0.1:4000"
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("1.2.3.%d", i))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				allowed++
			}
		}
		return allowed
	}

	t.Run("Untrusted Peer", func(t *testing.T) {
		mw := middleware.New(log.NewNop(), config.CORSConfig{}, config.UploadConfig{RateLimitPerMin: 1})
		r := newEngine(mw, mw.RateLimit())
		require.NoError(t, r.SetTrustedProxies(nil))

		assert.Equal(t, 1, send(r, 20), "a forged header must not open a new bucket")
	})

	t.Run("Trusted Proxy", func(t *testing.T) {
		mw := middleware.New(log.NewNop(), config.CORSConfig{}, config.UploadConfig{RateLimitPerMin: 1})
		r := newEngine(mw, mw.RateLimit())
		require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.0/8"}))

		assert.Equal(t, 5, send(r, 5))
	})
}
