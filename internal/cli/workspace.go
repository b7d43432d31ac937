package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/app/workspace"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/logger"
)

type globalOpts struct {
	debug bool
}

// streamFlags are the per-invocation overrides of the configured stream paths.
type streamFlags struct {
	input      string
	output     string
	processLog string
	noTrace    bool
}

func loadWorkspace(workspaceFlag string) (*workspace.Workspace, error) {
	dir := strings.TrimSpace(workspaceFlag)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace path: %w", err)
		}
		dir = abs
	}
	return workspace.Load(dir)
}

// apply layers command line flags over the config and env values.
func (f streamFlags) apply(ws *workspace.Workspace) {
	if v := strings.TrimSpace(f.input); v != "" {
		ws.Cfg.Paths.Input = v
	}
	if v := strings.TrimSpace(f.output); v != "" {
		ws.Cfg.Paths.Output = v
	}
	if v := strings.TrimSpace(f.processLog); v != "" {
		ws.Cfg.Paths.ProcessLog = v
		ws.Cfg.Trace.Enabled = true
	}
	if f.noTrace {
		ws.Cfg.Trace.Enabled = false
	}
}

// setupLogging opens the log file under root. Logging problems never stop a
// command; the returned cleanup is always safe to call.
func setupLogging(root string, opts *globalOpts) func() {
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: opts.debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
