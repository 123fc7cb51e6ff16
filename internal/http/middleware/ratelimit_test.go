package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sportsynce/product-service/internal/http/server"
	"github.com/stretchr/testify/assert"
)

func rateLimitedEngine(rps, burst int, handled *int) *gin.Engine {
	conf := server.Config{
		RateLimit: server.RateLimitConfig{
			Enabled:           lo.ToPtr(true),
			RequestsPerSecond: rps,
			Burst:             burst,
		},
	}
	mws := append(Defaults(), NewRateLimitMiddleware(conf, 150))
	engine := NewEngine(mws)
	engine.GET("/", func(c *gin.Context) {
		if handled != nil {
			*handled++
		}
		c.Status(http.StatusOK)
	})
	engine.GET("/health/live", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("rejection renders the failure envelope and stops the chain", func(t *testing.T) {
		var handled int
		engine := rateLimitedEngine(1, 1, &handled)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, handled)

		// The limiter runs before the envelope renderer, so it must write
		// the response itself rather than rely on later middleware.
		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"rate limit exceeded, please try again later"}`, w.Body.String())
		assert.Equal(t, 1, handled)
	})

	t.Run("health checks bypass the limiter", func(t *testing.T) {
		engine := rateLimitedEngine(1, 1, nil)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("disabled limiter produces no handler", func(t *testing.T) {
		conf := server.Config{
			RateLimit: server.RateLimitConfig{Enabled: lo.ToPtr(false)},
		}
		mw := NewRateLimitMiddleware(conf, 150)
		assert.Nil(t, mw.Handler)
	})
}
