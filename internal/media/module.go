package media

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewModule provides the Cloudinary-backed media store.
func NewModule() fx.Option {
	return fx.Provide(
		newConfig,
		func(conf Config, log *zap.Logger) (Store, error) {
			return newCloudinaryStore(conf, log)
		},
	)
}
