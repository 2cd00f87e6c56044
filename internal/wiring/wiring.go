// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/liner/internal/adapters/cargo"
	_ "go.trai.ch/liner/internal/adapters/config"
	_ "go.trai.ch/liner/internal/adapters/crates"
	_ "go.trai.ch/liner/internal/adapters/logger"
	_ "go.trai.ch/liner/internal/adapters/registry"
	_ "go.trai.ch/liner/internal/adapters/settings"
	_ "go.trai.ch/liner/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/liner/internal/app"
	_ "go.trai.ch/liner/internal/engine/resolver"
)
