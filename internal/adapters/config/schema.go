package config

import "time"

// Topofile represents the structure of the topo.yaml configuration file.
type Topofile struct {
	Cache     CacheDTO     `yaml:"cache"`
	Latency   *float64     `yaml:"latency"`
	Inventory InventoryDTO `yaml:"inventory"`
	Log       LogDTO       `yaml:"log"`
	Metrics   MetricsDTO   `yaml:"metrics"`
}

// CacheDTO locates the cache.
type CacheDTO struct {
	Dir     string `yaml:"dir"`
	Backend string `yaml:"backend"`
}

// InventoryDTO configures the inventory client.
type InventoryDTO struct {
	BaseURL           string         `yaml:"base_url"`
	Username          string         `yaml:"username"`
	PasswordEnv       string         `yaml:"password_env"`
	RequestsPerSecond *float64       `yaml:"requests_per_second"`
	Timeout           *time.Duration `yaml:"timeout"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// MetricsDTO configures metrics export.
type MetricsDTO struct {
	Textfile string `yaml:"textfile"`
}
