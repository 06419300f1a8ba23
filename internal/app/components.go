package app

import "go.trai.ch/tinystr/internal/core/ports"

// Components bundles the wired application pieces handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
