// Package config loads catalogd settings from config.yaml with viper and
// writes the default file on first run.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/catalog/internal/paths"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "CATALOG"
)

// Config keys.
const (
	KeyServerListen          = "server.listen"
	KeyServerShutdownTimeout = "server.shutdown_timeout"
	KeyLoggerMode            = "logger.mode"
	KeyLoggerLevel           = "logger.level"
	KeyLoggerFileEnable      = "logger.file_enable"
	KeyLoggerFilename        = "logger.filename"
	KeyMetricsEnabled        = "metrics.enabled"
	KeyMetricsPath           = "metrics.path"
	KeyCatalogSeedFile       = "catalog.seed_file"
)

// New returns a viper instance with defaults and env overrides set, reading
// config.yaml from configDir. Environment variables take the form
// CATALOG_SERVER_LISTEN.
func New(configDir string) *viper.Viper {
	def := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyServerListen, def.Server.Listen)
	v.SetDefault(KeyServerShutdownTimeout, def.Server.ShutdownTimeout)
	v.SetDefault(KeyLoggerMode, def.Logger.Mode)
	v.SetDefault(KeyLoggerLevel, def.Logger.Level)
	v.SetDefault(KeyLoggerFileEnable, def.Logger.FileEnable)
	v.SetDefault(KeyLoggerFilename, def.Logger.Filename)
	v.SetDefault(KeyMetricsEnabled, def.Metrics.Enabled)
	v.SetDefault(KeyMetricsPath, def.Metrics.Path)
	v.SetDefault(KeyCatalogSeedFile, def.Catalog.SeedFile)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads and validates the configuration in configDir. A missing
// config.yaml is not an error; defaults and environment apply.
func Load(configDir string) (types.Config, error) {
	v := New(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, errors.Wrap(err, "read config")
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// fileConfig is the on-disk shape of config.yaml. Durations are written as
// strings so the file stays readable.
type fileConfig struct {
	Server struct {
		Listen          string `yaml:"listen"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logger  types.LoggerConfig  `yaml:"logger"`
	Metrics types.MetricsConfig `yaml:"metrics"`
	Catalog types.CatalogConfig `yaml:"catalog"`
}

// Marshal renders cfg as config.yaml content.
func Marshal(cfg types.Config) ([]byte, error) {
	var fc fileConfig
	fc.Server.Listen = cfg.Server.Listen
	fc.Server.ShutdownTimeout = cfg.Server.ShutdownTimeout.String()
	fc.Logger = cfg.Logger
	fc.Metrics = cfg.Metrics
	fc.Catalog = cfg.Catalog

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	return data, nil
}

// EnsureDefault creates configDir and writes a default config.yaml into it
// if the file does not exist. It reports whether a file was written.
func EnsureDefault(configDir string) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, errors.Wrap(err, "create config directory")
	}

	path := paths.ConfigFile(configDir)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrap(err, "stat config file")
	}

	data, err := Marshal(types.DefaultConfig())
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, errors.Wrap(err, "write config file")
	}
	return true, nil
}
