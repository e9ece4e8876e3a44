package app

import (
	"log/slog"

	"bundesland.at/internal/appconf"
	"bundesland.at/internal/statedata"
)

// Application holds the dependencies shared by the HTTP handlers, the
// middleware and the static exporter.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
	States *statedata.Table
}
