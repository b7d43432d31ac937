package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/fsstream"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/runstore"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/workspacefinder"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/usecase"
)

// Workspace is a resolved root with its effective configuration and the
// adapters built from it.
type Workspace struct {
	Root  string
	Found bool
	Cfg   domain.Config

	Streams *fsstream.Provider
	Store   *runstore.JSONStore
}

// Load resolves the workspace for dir (default: working directory). Without a
// romcalc.yaml above dir, dir itself is used with default configuration.
// Environment overrides are applied last.
func Load(dir string) (*Workspace, error) {
	start := strings.TrimSpace(dir)
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}

	root, found, err := workspacefinder.NewFinder().RootOrDir(start)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if found {
		if cfg, err = workspacefinder.LoadConfig(root); err != nil {
			return nil, err
		}
	}
	if cfg, err = workspacefinder.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return New(root, found, cfg), nil
}

// New wires adapters for an already resolved root and config.
func New(root string, found bool, cfg domain.Config, opts ...fsstream.Option) *Workspace {
	return &Workspace{
		Root:    root,
		Found:   found,
		Cfg:     cfg,
		Streams: fsstream.NewProvider(root, opts...),
		Store:   runstore.NewJSONStore(root, cfg, runstore.WithIndex(cfg.Runs.Index)),
	}
}

// Request builds the batch request from the effective config. The process
// log path is cleared when tracing is disabled.
func (w *Workspace) Request() usecase.BatchRequest {
	req := usecase.BatchRequest{
		InputPath:  w.Cfg.Paths.Input,
		OutputPath: w.Cfg.Paths.Output,
	}
	if w.Cfg.Trace.Enabled {
		req.ProcessLogPath = w.Cfg.Paths.ProcessLog
	}
	return req
}

// Batch returns the batch use case. Run artifacts are saved only when save is
// set and the config allows it.
func (w *Workspace) Batch(log *slog.Logger, save bool) *usecase.RunBatch {
	var store ports.ArtifactStore
	if save && w.Cfg.Runs.Save {
		store = w.Store
	}
	return usecase.NewRunBatch(w.Streams, store, usecase.WithLogger(log))
}

// Rel shortens p relative to the root for display.
func (w *Workspace) Rel(p string) string {
	if p == "" || p == fsstream.Stdio {
		return p
	}
	rel, err := filepath.Rel(w.Root, w.Streams.Resolve(p))
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}
