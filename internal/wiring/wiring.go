// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xpersist/internal/adapters/codec"
	_ "go.trai.ch/xpersist/internal/adapters/config"
	_ "go.trai.ch/xpersist/internal/adapters/fs"
	_ "go.trai.ch/xpersist/internal/adapters/logger"
	_ "go.trai.ch/xpersist/internal/adapters/token"
	// Register app and engine nodes.
	_ "go.trai.ch/xpersist/internal/app"
	_ "go.trai.ch/xpersist/internal/engine/gatekeeper"
)
