package media

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	CloudName string `mapstructure:"cloud-name"`
	APIKey    string `mapstructure:"api-key"`
	APISecret string `mapstructure:"api-secret"`
	Folder    string `mapstructure:"folder"`
}

func newConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if sub := v.Sub("cloudinary"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to load cloudinary config: %w", err)
		}
	}

	// Credentials are usually injected via environment, not the config file.
	if cfg.CloudName == "" {
		cfg.CloudName = v.GetString("CLOUDINARY_CLOUD_NAME")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = v.GetString("CLOUDINARY_API_KEY")
	}
	if cfg.APISecret == "" {
		cfg.APISecret = v.GetString("CLOUDINARY_API_SECRET")
	}
	if cfg.Folder == "" {
		cfg.Folder = "uploads"
	}

	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return cfg, fmt.Errorf("cloudinary credentials are not configured")
	}

	return cfg, nil
}
