package server

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestViper(t *testing.T, settings map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	for key, value := range settings {
		v.Set(key, value)
	}
	return v
}

func TestNewConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		v := newTestViper(t, map[string]any{"server.port": 5000})

		cfg, err := newConfig(v, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, 5000, cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.Connection.ReadHeaderTimeout)
		assert.Equal(t, 60*time.Second, cfg.Connection.ReadTimeout)
		assert.Equal(t, 1<<20, cfg.Connection.MaxHeaderBytes)
		require.NotNil(t, cfg.RateLimit.Enabled)
		assert.True(t, *cfg.RateLimit.Enabled)
		assert.Equal(t, 1000, cfg.RateLimit.RequestsPerSecond)
	})

	t.Run("PORT env setting overrides the file", func(t *testing.T) {
		v := newTestViper(t, map[string]any{
			"server.port": 5000,
			"PORT":        8080,
		})

		cfg, err := newConfig(v, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("falls back to the default port", func(t *testing.T) {
		v := newTestViper(t, map[string]any{"server.cors.allowed-origins": []string{"http://localhost:3000"}})

		cfg, err := newConfig(v, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 5000, cfg.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	})
}
