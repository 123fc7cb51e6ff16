package server

import (
	"context"
	"net/http"

	"github.com/sportsynce/product-service/internal/core/health"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewModule provides the HTTP server and ties it to the fx lifecycle.
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(newConfig),
		fx.Invoke(startHTTPServer),
	)
}

func startHTTPServer(lc fx.Lifecycle, log *zap.Logger, conf Config, handler http.Handler, readiness health.ComponentManager, shutdowner fx.Shutdowner) {
	var srv Server
	markReady := readiness.AddComponent("http-server")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Created in OnStart - all routes are registered by now.
			srv = newServer(log, conf, handler)

			go func() {
				if err := srv.Serve(markReady); err != nil {
					log.Error("HTTP server failed, shutting down application", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if srv != nil {
				return srv.Shutdown(ctx)
			}
			return nil
		},
	})
}
