package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr      string        `mapstructure:"SERVER_ADDR"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	TemplatesDir    string        `mapstructure:"TEMPLATES_DIR"`
	StaticDir       string        `mapstructure:"STATIC_DIR"`
	SSEBuffer       int           `mapstructure:"SSE_BUFFER"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_ADDR":      ":8080",
	"GIN_MODE":         "release",
	"LOG_LEVEL":        "info",
	"TEMPLATES_DIR":    "templates",
	"STATIC_DIR":       "static",
	"SSE_BUFFER":       10,
	"SHUTDOWN_TIMEOUT": "5s",
}

// Setup reads cfgPath (if it exists) and the environment. Environment
// variables win over the file; a missing file falls back to defaults.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
