package ports

import "go.trai.ch/topo/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration found from cwd, falling back to defaults.
	Load(cwd string) (domain.Config, error)
}
