package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/sportsynce/product-service/internal/http/server"
	"go.uber.org/fx"
)

// NewCORSMiddleware allows the configured frontend origins to call the API.
func NewCORSMiddleware(serverConfig server.Config, priority int) Middleware {
	config := serverConfig.CORS

	if len(config.AllowedOrigins) == 0 {
		return Middleware{
			Priority: priority,
			Handler:  nil, // skipped in NewEngine
		}
	}

	return Middleware{
		Priority: priority,
		Handler: cors.New(cors.Config{
			AllowOrigins: config.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}),
	}
}

// CORSModule adds CORS middleware to the application.
func CORSModule(priority int) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(serverConfig server.Config) Middleware {
				return NewCORSMiddleware(serverConfig, priority)
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
	)
}
