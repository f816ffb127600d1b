package domain

import "time"

// Config holds every tunable of a run. Components receive the values they need at construction.
type Config struct {
	Cache     CacheConfig
	Latency   float64
	Inventory InventoryConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

// CacheConfig locates the cache.
type CacheConfig struct {
	Dir     string
	Backend string
}

// InventoryConfig configures the inventory source client.
type InventoryConfig struct {
	BaseURL           string
	Username          string
	Password          string
	RequestsPerSecond float64
	Timeout           time.Duration
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string
	JSON  bool
}

// MetricsConfig configures metrics export.
type MetricsConfig struct {
	Textfile string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Dir:     DefaultCacheDirName,
			Backend: BackendDir,
		},
		Latency: DefaultLatency,
		Inventory: InventoryConfig{
			BaseURL:           DefaultInventoryURL,
			RequestsPerSecond: DefaultRequestsPerSecond,
			Timeout:           DefaultRequestTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
