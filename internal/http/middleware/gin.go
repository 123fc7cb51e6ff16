package middleware

import (
	"net/http"
	"runtime/debug"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sportsynce/product-service/internal/core/logger"
	"github.com/sportsynce/product-service/internal/httpapi"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Middleware represents a gin middleware with priority.
// Lower priority runs earlier (closer to the connection).
type Middleware struct {
	Priority int
	Handler  gin.HandlerFunc
}

type mwIn struct {
	fx.In
	Middlewares []Middleware `group:"gin_mw"`
}

// NewGinModule assembles the gin engine from the priority-sorted middleware group.
func NewGinModule() fx.Option {
	return fx.Provide(
		provideGinAndHandler,
		fx.Annotate(
			func() Middleware {
				return Middleware{Priority: 100, Handler: recoveryMiddleware()}
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
		fx.Annotate(
			func() Middleware {
				return Middleware{Priority: 200, Handler: loggerMiddleware()}
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
		fx.Annotate(
			func() Middleware {
				return Middleware{Priority: 300, Handler: errorLoggerMiddleware()}
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
		fx.Annotate(
			func() Middleware {
				return Middleware{Priority: 400, Handler: envelopeMiddleware()}
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
	)
}

func provideGinAndHandler(in mwIn) (*gin.Engine, http.Handler) {
	e := NewEngine(in.Middlewares)
	return e, e
}

// Defaults returns the baseline middleware set outside of fx wiring.
func Defaults() []Middleware {
	return []Middleware{
		{Priority: 100, Handler: recoveryMiddleware()},
		{Priority: 200, Handler: loggerMiddleware()},
		{Priority: 300, Handler: errorLoggerMiddleware()},
		{Priority: 400, Handler: envelopeMiddleware()},
	}
}

// NewEngine builds a gin engine with the given middleware set, lowest priority first.
func NewEngine(mws []Middleware) *gin.Engine {
	engine := gin.New(func(e *gin.Engine) {
		e.ContextWithFallback = true
	})

	sort.Slice(mws, func(i, j int) bool { return mws[i].Priority < mws[j].Priority })
	for _, m := range mws {
		if m.Handler == nil {
			continue
		}
		engine.Use(m.Handler)
	}

	return engine
}

// requestFields returns common request fields for logging.
func requestFields(c *gin.Context) []zap.Field {
	return []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("client_ip", c.ClientIP()),
	}
}

func loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health/live" || path == "/health/ready" {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		fields := append(requestFields(c),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", c.Request.UserAgent()),
		)

		logger.FromContext(c).Debug("incoming request", fields...)
	}
}

func recoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				fields := append(requestFields(c),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				logger.FromContext(c).Error("panic recovered", fields...)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httpapi.Failure{
					Success: false,
					Error:   http.StatusText(http.StatusInternalServerError),
				})
			}
		}()
		c.Next()
	}
}

func errorLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			log := logger.FromContext(c)
			for _, e := range c.Errors {
				fields := append(requestFields(c),
					zap.Int("status", c.Writer.Status()),
					zap.String("error", e.Error()),
				)
				log.Error("request error", fields...)
			}
		}
	}
}

// envelopeMiddleware converts gin errors to the uniform {success:false,error}
// failure envelope. An *httpapi.Error in the chain sets status and message;
// anything else becomes a generic 500.
func envelopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error."

		for _, e := range c.Errors {
			if apiErr, ok := e.Meta.(*httpapi.Error); ok {
				status = apiErr.Status
				message = apiErr.Message
				break
			}
		}

		c.JSON(status, httpapi.Failure{Success: false, Error: message})
	}
}
