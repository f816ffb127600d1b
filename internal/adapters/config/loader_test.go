package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/topo/internal/adapters/config"
	"go.trai.ch/topo/internal/core/domain"
)

func newLoader(env map[string]string) *config.Loader {
	return &config.Loader{Getenv: func(key string) string { return env[key] }}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	cfg, err := newLoader(nil).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, domain.DefaultCacheDirName), cfg.Cache.Dir)
	assert.Equal(t, domain.BackendDir, cfg.Cache.Backend)
	assert.InDelta(t, domain.DefaultLatency, cfg.Latency, 0)
	assert.Equal(t, domain.DefaultInventoryURL, cfg.Inventory.BaseURL)
	assert.InDelta(t, domain.DefaultRequestsPerSecond, cfg.Inventory.RequestsPerSecond, 0)
	assert.Equal(t, domain.DefaultRequestTimeout, cfg.Inventory.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
cache:
  dir: /var/cache/topo
  backend: sqlite
latency: 0.001
inventory:
  base_url: https://inventory.example/api
  username: alice
  password_env: MY_SECRET
  requests_per_second: 0
  timeout: 5s
log:
  level: debug
  json: true
metrics:
  textfile: /tmp/topo.prom
`)

	cfg, err := newLoader(map[string]string{"MY_SECRET": "hunter2"}).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/topo", cfg.Cache.Dir)
	assert.Equal(t, domain.BackendSQLite, cfg.Cache.Backend)
	assert.InDelta(t, 0.001, cfg.Latency, 0)
	assert.Equal(t, "https://inventory.example/api", cfg.Inventory.BaseURL)
	assert.Equal(t, "alice", cfg.Inventory.Username)
	assert.Equal(t, "hunter2", cfg.Inventory.Password)
	assert.Zero(t, cfg.Inventory.RequestsPerSecond)
	assert.Equal(t, 5*time.Second, cfg.Inventory.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "/tmp/topo.prom", cfg.Metrics.Textfile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "cache:\n  dir: from-file\n")

	cfg, err := newLoader(map[string]string{
		config.EnvCacheDir:        "/srv/cache",
		config.EnvAPIURL:          "http://localhost:8080",
		domain.DefaultPasswordEnv: "pw",
	}).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/cache", cfg.Cache.Dir)
	assert.Equal(t, "http://localhost:8080", cfg.Inventory.BaseURL)
	assert.Equal(t, "pw", cfg.Inventory.Password)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()
	cfgDir := t.TempDir()
	path := writeConfig(t, cfgDir, "latency: 0.5\n")

	cfg, err := newLoader(map[string]string{config.EnvConfig: path}).Load(t.TempDir())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cfg.Latency, 0)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := newLoader(map[string]string{config.EnvConfig: missing}).Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "\n")

	cfg, err := newLoader(nil).Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, domain.BackendDir, cfg.Cache.Backend)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"invalid yaml", "cache: [", domain.ErrConfigParseFailed},
		{"unknown field", "cahce:\n  dir: x\n", domain.ErrConfigParseFailed},
		{"bad duration", "inventory:\n  timeout: soon\n", domain.ErrConfigParseFailed},
		{"unknown backend", "cache:\n  backend: redis\n", domain.ErrInvalidConfig},
		{"negative latency", "latency: -1\n", domain.ErrInvalidConfig},
		{"negative rate", "inventory:\n  requests_per_second: -2\n", domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, tt.content)

			_, err := newLoader(nil).Load(tmpDir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
