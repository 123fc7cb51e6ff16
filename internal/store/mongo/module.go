package mongo

import (
	"context"

	"github.com/sportsynce/product-service/internal/core/health"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewModule provides MongoDB components for dependency injection.
func NewModule() fx.Option {
	return fx.Provide(
		newConfig,
		provideMongo,
	)
}

func provideMongo(lc fx.Lifecycle, log *zap.Logger, conf Config, readiness health.ComponentManager) (Mongo, error) {
	m, err := newMongo(log, conf)
	if err != nil {
		return nil, err
	}

	markReady := readiness.AddComponent("mongo")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := m.connect(ctx); err != nil {
				return err
			}
			markReady()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.disconnect(ctx)
		},
	})

	return m, nil
}
