// Package config loads server configuration from a YAML file and
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings of the analysis server. Every field has an
// environment override so containerised deployments can run without a
// config file.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `env:"COLORCRAFT_LISTEN_ADDR" env-default:":8000" yaml:"listenAddr"`

	// MaxUploadBytes caps the size of an uploaded image.
	MaxUploadBytes int64 `env:"COLORCRAFT_MAX_UPLOAD_BYTES" env-default:"10485760" yaml:"maxUploadBytes"`

	// DefaultColorCount is used when an extraction request omits
	// n_colors.
	DefaultColorCount int `env:"COLORCRAFT_DEFAULT_COLOR_COUNT" env-default:"5" yaml:"defaultColorCount"`

	// ReadTimeout and WriteTimeout bound request handling. Clustering
	// is the only expensive call and is wall-clock bounded here rather
	// than inside the engine.
	ReadTimeout  time.Duration `env:"COLORCRAFT_READ_TIMEOUT" env-default:"15s" yaml:"readTimeout"`
	WriteTimeout time.Duration `env:"COLORCRAFT_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`

	// GracefulShutdownTimeout is the maximum duration to wait for
	// in-flight requests during shutdown.
	GracefulShutdownTimeout time.Duration `env:"COLORCRAFT_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`

	// LogLevel is an hclog level name (trace, debug, info, warn, error).
	LogLevel string `env:"COLORCRAFT_LOG_LEVEL" env-default:"info" yaml:"logLevel"`
}

// Load reads configuration from the given YAML file path, applying
// environment overrides on top.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return &cfg, nil
}

// LoadEnv builds configuration from environment variables and defaults
// only, for deployments without a config file.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}
	return &cfg, nil
}
