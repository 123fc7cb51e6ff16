package product

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// NewModule provides the product feature: repository, service and routes.
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			NewRepository,
			NewService,
			func(s *Service) *Handler { return NewHandler(s) },
		),
		fx.Invoke(func(r *gin.Engine, h *Handler) {
			h.RegisterRoutes(r)
		}),
	)
}
