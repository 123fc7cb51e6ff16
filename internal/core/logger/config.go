package logger

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Level is the minimum logging level.
	Level zapcore.Level

	// Development switches to console encoding with human-readable timestamps.
	// Production mode (false) emits JSON.
	Development bool

	// OutputPaths is a list of URLs or file paths to write logging output to.
	// If empty, defaults to stderr.
	OutputPaths []string
}

func newConfig(v *viper.Viper) (Config, error) {
	sub := v.Sub("logger")
	if sub == nil {
		return Config{Level: zapcore.InfoLevel}, nil
	}

	var raw struct {
		Level       string   `mapstructure:"level"`
		Development bool     `mapstructure:"development"`
		OutputPaths []string `mapstructure:"outputPaths"`
	}
	if err := sub.Unmarshal(&raw); err != nil {
		return Config{}, fmt.Errorf("failed to load logger config: %w", err)
	}

	level := zapcore.InfoLevel
	if raw.Level != "" {
		parsed, err := zapcore.ParseLevel(raw.Level)
		if err != nil {
			return Config{}, fmt.Errorf("invalid log level '%s': %w", raw.Level, err)
		}
		level = parsed
	}

	return Config{
		Level:       level,
		Development: raw.Development,
		OutputPaths: raw.OutputPaths,
	}, nil
}
