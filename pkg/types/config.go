package types

import (
	"errors"
	"time"
)

// Config holds the runtime settings of the catalog server. It is loaded from
// config.yaml by internal/config.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Listen          string        `mapstructure:"listen" yaml:"listen"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Mode       string `mapstructure:"mode" yaml:"mode"`
	Level      string `mapstructure:"level" yaml:"level"`
	FileEnable bool   `mapstructure:"file_enable" yaml:"file_enable"`
	Filename   string `mapstructure:"filename" yaml:"filename,omitempty"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// CatalogConfig configures the catalog backend. An empty SeedFile selects
// the built-in dataset.
type CatalogConfig struct {
	SeedFile string `mapstructure:"seed_file" yaml:"seed_file,omitempty"`
}

// Logger modes.
const (
	LoggerModeDevelopment = "development"
	LoggerModeProduction  = "production"
)

// Config validation errors.
var (
	ErrListenEmpty         = errors.New("server listen address must not be empty")
	ErrShutdownTimeout     = errors.New("server shutdown timeout must be positive")
	ErrLoggerModeUnknown   = errors.New("unknown logger mode")
	ErrLoggerLevelUnknown  = errors.New("unknown logger level")
	ErrLoggerFilenameEmpty = errors.New("logger filename required when file output is enabled")
	ErrMetricsPathInvalid  = errors.New("metrics path must start with /")
)

var knownLoggerModes = map[string]bool{
	LoggerModeDevelopment: true,
	LoggerModeProduction:  true,
}

var knownLoggerLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns the settings used when config.yaml is missing.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Listen:          ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Logger: LoggerConfig{
			Mode:  LoggerModeDevelopment,
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate checks that the Config is well-formed and returns one of the
// sentinel errors above on failure.
func (c Config) Validate() error {
	if c.Server.Listen == "" {
		return ErrListenEmpty
	}
	if c.Server.ShutdownTimeout <= 0 {
		return ErrShutdownTimeout
	}
	if !knownLoggerModes[c.Logger.Mode] {
		return ErrLoggerModeUnknown
	}
	if !knownLoggerLevels[c.Logger.Level] {
		return ErrLoggerLevelUnknown
	}
	if c.Logger.FileEnable && c.Logger.Filename == "" {
		return ErrLoggerFilenameEmpty
	}
	if c.Metrics.Enabled && (c.Metrics.Path == "" || c.Metrics.Path[0] != '/') {
		return ErrMetricsPathInvalid
	}
	return nil
}
