// Package wiring registers all Graft nodes for the tooling.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tinystr/internal/adapters/corpus"
	_ "go.trai.ch/tinystr/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/tinystr/internal/app"
)
