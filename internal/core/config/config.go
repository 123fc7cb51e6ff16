package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config holds the service identity and the location of the config file.
type Config struct {
	ConfigFile     string
	ConfigDir      string
	ConfigName     string
	ServiceName    string
	ServiceVersion string
	Environment    Environment
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvLocal      Environment = "local"
	EnvStaging    Environment = "staging"
	EnvProduction Environment = "pro"
)

func (e Environment) IsValid() bool {
	switch e {
	case EnvLocal, EnvStaging, EnvProduction:
		return true
	}
	return false
}

func (e Environment) String() string {
	return string(e)
}

// NewModule creates an fx module providing Config and *viper.Viper.
//
// Environment variables:
//   - APP_ENV: deployment environment (local, staging, pro) - REQUIRED
//   - APP_SERVICE_NAME: service name - REQUIRED
//   - APP_SERVICE_VERSION: service version - REQUIRED
//   - CONFIG_FILE: explicit path to config file - OPTIONAL
//   - CONFIG_DIR: directory containing config files - OPTIONAL (default: ./configs)
//   - CONFIG_NAME: config file name without extension - OPTIONAL (default: config.{env})
func NewModule() fx.Option {
	return fx.Options(
		fx.Provide(
			provideAppConf,
			newViper,
		),
		fx.Invoke(func(logger *zap.Logger, conf Config, v *viper.Viper) {
			logger.Info("configuration loaded",
				zap.String("service", conf.ServiceName),
				zap.String("version", conf.ServiceVersion),
				zap.String("environment", conf.Environment.String()),
				zap.String("configFile", v.ConfigFileUsed()),
			)
		}),
	)
}

func provideAppConf() (Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Warning: failed to load .env file: %v\n", err)
	}

	env := Environment(os.Getenv("APP_ENV"))
	if !env.IsValid() {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s", env)
	}
	serviceName := os.Getenv("APP_SERVICE_NAME")
	if serviceName == "" {
		return Config{}, fmt.Errorf("APP_SERVICE_NAME is not set")
	}
	serviceVersion := os.Getenv("APP_SERVICE_VERSION")
	if serviceVersion == "" {
		return Config{}, fmt.Errorf("APP_SERVICE_VERSION is not set")
	}

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "./configs"
	}

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "config." + string(env)
	}

	return Config{
		ConfigFile:     os.Getenv("CONFIG_FILE"),
		ConfigDir:      configDir,
		ConfigName:     configName,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    env,
	}, nil
}

func newViper(conf Config) (*viper.Viper, error) {
	v := viper.New()

	if conf.ConfigFile == "" {
		v.SetConfigName(conf.ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(conf.ConfigDir)
	} else {
		v.SetConfigFile(conf.ConfigFile)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return v, nil
}
