package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sportsynce/product-service/internal/httpapi"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEnvelopeMiddleware(t *testing.T) {
	t.Run("renders the attached API error", func(t *testing.T) {
		engine := NewEngine(Defaults())
		engine.GET("/boom", func(c *gin.Context) {
			_ = c.Error(errors.New("lookup failed")).SetMeta(httpapi.NotFound("Product not found"))
			c.Abort()
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/boom", nil)
		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Product not found"}`, w.Body.String())
	})

	t.Run("unknown errors become a generic 500", func(t *testing.T) {
		engine := NewEngine(Defaults())
		engine.GET("/boom", func(c *gin.Context) {
			_ = c.Error(errors.New("database exploded"))
			c.Abort()
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/boom", nil)
		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Internal server error."}`, w.Body.String())
	})

	t.Run("does not touch successful responses", func(t *testing.T) {
		engine := NewEngine(Defaults())
		engine.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/ok", nil)
		engine.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	engine := NewEngine(Defaults())
	engine.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/panic", nil)
	engine.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal Server Error"}`, w.Body.String())
}

func TestMiddlewareOrdering(t *testing.T) {
	var order []string
	mws := []Middleware{
		{Priority: 300, Handler: func(c *gin.Context) { order = append(order, "third") }},
		{Priority: 100, Handler: func(c *gin.Context) { order = append(order, "first") }},
		{Priority: 200, Handler: func(c *gin.Context) { order = append(order, "second") }},
		{Priority: 250, Handler: nil}, // disabled middleware is skipped
	}
	engine := NewEngine(mws)
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	engine.ServeHTTP(w, r)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}
