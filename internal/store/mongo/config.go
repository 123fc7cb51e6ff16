package mongo

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ConnectionString string `mapstructure:"connection-string"`
	Host             string `mapstructure:"host"`
	Port             int    `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`

	// Connection pool settings
	MaxPoolSize     uint64        `mapstructure:"max-pool-size"`
	MinPoolSize     uint64        `mapstructure:"min-pool-size"`
	MaxConnIdleTime time.Duration `mapstructure:"max-conn-idle-time"`
	ConnectTimeout  time.Duration `mapstructure:"connect-timeout"`

	// QueryTimeout bounds every single query issued through the wrapper.
	QueryTimeout time.Duration `mapstructure:"query-timeout"`
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	sub := v.Sub("mongo")
	if sub == nil {
		return cfg, fmt.Errorf("mongo configuration section is missing")
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load mongo config: %w", err)
	}

	if cfg.MaxPoolSize == 0 {
		cfg.MaxPoolSize = 100
	}
	if cfg.MinPoolSize == 0 {
		cfg.MinPoolSize = 10
	}
	if cfg.MaxConnIdleTime == 0 {
		cfg.MaxConnIdleTime = 5 * time.Minute
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.QueryTimeout == 0 {
		cfg.QueryTimeout = 30 * time.Second
	}

	return cfg, nil
}
