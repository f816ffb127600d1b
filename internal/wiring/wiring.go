// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/topo/internal/adapters/cache"
	_ "go.trai.ch/topo/internal/adapters/config"
	_ "go.trai.ch/topo/internal/adapters/export"
	_ "go.trai.ch/topo/internal/adapters/inventory"
	_ "go.trai.ch/topo/internal/adapters/logger"
	_ "go.trai.ch/topo/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/topo/internal/app"
	_ "go.trai.ch/topo/internal/engine/builder"
	_ "go.trai.ch/topo/internal/engine/fetcher"
)
