// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/btl/internal/adapters/cas"
	_ "go.trai.ch/btl/internal/adapters/config"
	_ "go.trai.ch/btl/internal/adapters/fetch"
	_ "go.trai.ch/btl/internal/adapters/logger"
	_ "go.trai.ch/btl/internal/adapters/shell"
	_ "go.trai.ch/btl/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/btl/internal/adapters/update"
	_ "go.trai.ch/btl/internal/adapters/versions"
	// Register app and engine nodes.
	_ "go.trai.ch/btl/internal/app"
	_ "go.trai.ch/btl/internal/engine/settings"
)
