// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sameunit/internal/adapters/cas"
	_ "go.trai.ch/sameunit/internal/adapters/config"
	_ "go.trai.ch/sameunit/internal/adapters/fs"
	_ "go.trai.ch/sameunit/internal/adapters/linear"
	_ "go.trai.ch/sameunit/internal/adapters/logger"
	_ "go.trai.ch/sameunit/internal/adapters/shell"
	_ "go.trai.ch/sameunit/internal/adapters/telemetry"
	_ "go.trai.ch/sameunit/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/sameunit/internal/app"
)
