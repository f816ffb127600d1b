// Package config provides the configuration loader for topo.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/topo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the loader.
const (
	EnvConfig   = "TOPO_CONFIG"
	EnvCacheDir = "TOPO_CACHE_DIR"
	EnvAPIURL   = "TOPO_API_URL"
)

var validBackends = []string{domain.BackendDir, domain.BackendSQLite}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Getenv func(string) string
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{Getenv: os.Getenv}
}

// Load reads the configuration from $TOPO_CONFIG or topo.yaml in cwd.
// A missing topo.yaml yields the defaults; a missing explicit $TOPO_CONFIG is an error.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	path := l.getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cwd, domain.ConfigFileName)
	}

	var file Topofile
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if file, err = parse(data); err != nil {
			return domain.Config{}, zerr.With(err, "path", path)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	cfg := l.resolve(file)
	if !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(cwd, cfg.Cache.Dir)
	}

	if err := Validate(cfg); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func parse(data []byte) (Topofile, error) {
	var file Topofile
	if len(bytes.TrimSpace(data)) == 0 {
		return file, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return Topofile{}, errors.Join(domain.ErrConfigParseFailed, err)
	}
	return file, nil
}

// resolve layers the file and the environment over the defaults.
func (l *Loader) resolve(file Topofile) domain.Config {
	cfg := domain.DefaultConfig()

	if file.Cache.Dir != "" {
		cfg.Cache.Dir = file.Cache.Dir
	}
	if file.Cache.Backend != "" {
		cfg.Cache.Backend = file.Cache.Backend
	}
	if file.Latency != nil {
		cfg.Latency = *file.Latency
	}

	if file.Inventory.BaseURL != "" {
		cfg.Inventory.BaseURL = file.Inventory.BaseURL
	}
	cfg.Inventory.Username = file.Inventory.Username
	passwordEnv := file.Inventory.PasswordEnv
	if passwordEnv == "" {
		passwordEnv = domain.DefaultPasswordEnv
	}
	cfg.Inventory.Password = l.getenv(passwordEnv)
	if file.Inventory.RequestsPerSecond != nil {
		cfg.Inventory.RequestsPerSecond = *file.Inventory.RequestsPerSecond
	}
	if file.Inventory.Timeout != nil {
		cfg.Inventory.Timeout = *file.Inventory.Timeout
	}

	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	cfg.Log.JSON = file.Log.JSON
	cfg.Metrics.Textfile = file.Metrics.Textfile

	if dir := l.getenv(EnvCacheDir); dir != "" {
		cfg.Cache.Dir = dir
	}
	if url := l.getenv(EnvAPIURL); url != "" {
		cfg.Inventory.BaseURL = url
	}

	return cfg
}

// Validate checks that every value of cfg is in range.
func Validate(cfg domain.Config) error {
	switch {
	case !slices.Contains(validBackends, cfg.Cache.Backend):
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown cache backend"), "backend", cfg.Cache.Backend)
	case cfg.Cache.Dir == "":
		return zerr.Wrap(domain.ErrInvalidConfig, "cache directory is empty")
	case cfg.Latency < 0:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "latency must not be negative"), "latency", cfg.Latency)
	case cfg.Inventory.BaseURL == "":
		return zerr.Wrap(domain.ErrInvalidConfig, "inventory base url is empty")
	case cfg.Inventory.RequestsPerSecond < 0:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "requests per second must not be negative"),
			"requests_per_second", cfg.Inventory.RequestsPerSecond)
	case cfg.Inventory.Timeout < 0:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "timeout must not be negative"), "timeout", cfg.Inventory.Timeout)
	}
	return nil
}

func (l *Loader) getenv(key string) string {
	if l.Getenv == nil {
		return ""
	}
	return l.Getenv(key)
}
