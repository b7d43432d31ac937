package tui

import (
	"log/slog"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
