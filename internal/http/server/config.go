package server

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Port int `mapstructure:"port"`

	// Server connection settings
	Connection ConnectionConfig `mapstructure:"connection"`

	// Rate limiting
	RateLimit RateLimitConfig `mapstructure:"rate-limit"`

	// CORS for browser clients
	CORS CORSConfig `mapstructure:"cors"`
}

// ConnectionConfig contains low-level HTTP server connection settings.
// These are hard timeouts that close the connection without an HTTP response.
type ConnectionConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read-header-timeout"`
	ReadTimeout       time.Duration `mapstructure:"read-timeout"`
	WriteTimeout      time.Duration `mapstructure:"write-timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle-timeout"`
	MaxHeaderBytes    int           `mapstructure:"max-header-bytes"`
}

type RateLimitConfig struct {
	Enabled           *bool `mapstructure:"enabled"`
	RequestsPerSecond int   `mapstructure:"requests-per-second"`
	Burst             int   `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed-origins"`
}

func newConfig(v *viper.Viper, logger *zap.Logger) (Config, error) {
	var cfg Config
	if sub := v.Sub("server"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to load server config: %w", err)
		}
	}

	// PORT env var wins, matching the original deployment contract.
	if port := v.GetInt("PORT"); port != 0 {
		cfg.Port = port
	}
	if cfg.Port == 0 {
		cfg.Port = 5000
	}

	cfg.Connection.setDefaults()
	cfg.RateLimit.setDefaults()

	logger.Info("loaded server config", zap.Int("port", cfg.Port))
	return cfg, nil
}

func (c *ConnectionConfig) setDefaults() {
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = 10 * time.Second
	}
	if c.ReadTimeout == 0 {
		// Multipart uploads can be slow on bad links.
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 60 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 120 * time.Second
	}
	if c.MaxHeaderBytes == 0 {
		c.MaxHeaderBytes = 1 << 20
	}
}

func (c *RateLimitConfig) setDefaults() {
	if c.Enabled == nil {
		c.Enabled = lo.ToPtr(true)
	}
	if !*c.Enabled {
		return
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = 1000
	}
	if c.Burst == 0 {
		c.Burst = 100
	}
}
