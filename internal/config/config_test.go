package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  listen: "127.0.0.1:9000"
  shutdown_timeout: 3s
logger:
  mode: production
  level: debug
metrics:
  enabled: false
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Listen)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, types.LoggerModeProduction, cfg.Logger.Mode)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path, "unset keys keep defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  listen: \":9000\"\n")
	t.Setenv("CATALOG_SERVER_LISTEN", ":7000")
	t.Setenv("CATALOG_LOGGER_LEVEL", "warn")
	t.Setenv("CATALOG_CATALOG_SEED_FILE", "/srv/seed.yaml")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Listen)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "/srv/seed.yaml", cfg.Catalog.SeedFile)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "unknown logger mode",
			body:    "logger:\n  mode: chatty\n",
			wantErr: types.ErrLoggerModeUnknown,
		},
		{
			name:    "file output without filename",
			body:    "logger:\n  file_enable: true\n",
			wantErr: types.ErrLoggerFilenameEmpty,
		},
		{
			name:    "relative metrics path",
			body:    "metrics:\n  path: metrics\n",
			wantErr: types.ErrMetricsPathInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			_, err := Load(dir)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "server: [unclosed\n")
		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}

func TestEnsureDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "catalog")

	created, err := EnsureDefault(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "shutdown_timeout: 10s")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)

	t.Run("existing file is left alone", func(t *testing.T) {
		writeConfig(t, dir, "server:\n  listen: \":1\"\n")
		created, err := EnsureDefault(dir)
		require.NoError(t, err)
		assert.False(t, created)

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, ":1", cfg.Server.Listen)
	})
}
