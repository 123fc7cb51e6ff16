// Package app composes the service from its fx modules.
package app

import (
	"github.com/sportsynce/product-service/internal/core/config"
	corehealth "github.com/sportsynce/product-service/internal/core/health"
	"github.com/sportsynce/product-service/internal/core/logger"
	httphealth "github.com/sportsynce/product-service/internal/http/health"
	"github.com/sportsynce/product-service/internal/http/middleware"
	"github.com/sportsynce/product-service/internal/http/server"
	"github.com/sportsynce/product-service/internal/media"
	"github.com/sportsynce/product-service/internal/product"
	storemongo "github.com/sportsynce/product-service/internal/store/mongo"
	"go.uber.org/fx"
)

// New builds the fx application for the product service.
func New() *fx.App {
	return fx.New(Options())
}

// Options returns the full module graph; tests can layer overrides on top.
func Options() fx.Option {
	return fx.Options(
		logger.NewModule(),
		config.NewModule(),
		corehealth.NewModule(),
		storemongo.NewModule(),
		media.NewModule(),
		server.NewModule(),
		middleware.NewGinModule(),
		middleware.RateLimitModule(150),
		middleware.CORSModule(50),
		httphealth.NewModule(),
		product.NewModule(),
	)
}
