package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportsynce/product-service/internal/core/logger"
	"github.com/sportsynce/product-service/internal/http/server"
	"github.com/sportsynce/product-service/internal/httpapi"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// NewRateLimitMiddleware creates a rate limiting middleware.
func NewRateLimitMiddleware(serverConfig server.Config, priority int) Middleware {
	config := serverConfig.RateLimit

	if !*config.Enabled {
		return Middleware{
			Priority: priority,
			Handler:  nil, // skipped in NewEngine
		}
	}

	limiter := rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)

	return Middleware{
		Priority: priority,
		Handler: func(c *gin.Context) {
			// Health checks are never rate limited.
			if c.Request.URL.Path == "/health/live" || c.Request.URL.Path == "/health/ready" {
				c.Next()
				return
			}

			if !limiter.Allow() {
				// The envelope renderer sits later in the chain and never runs
				// once an earlier middleware aborts, so respond directly here.
				logger.FromContext(c).Warn("rate limit exceeded", requestFields(c)...)
				c.AbortWithStatusJSON(http.StatusTooManyRequests, httpapi.Failure{
					Success: false,
					Error:   "rate limit exceeded, please try again later",
				})
				return
			}

			c.Next()
		},
	}
}

// RateLimitModule adds rate limiting middleware to the application.
func RateLimitModule(priority int) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(serverConfig server.Config) Middleware {
				return NewRateLimitMiddleware(serverConfig, priority)
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
	)
}
