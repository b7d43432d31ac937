package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/app/workspace"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

const batchTimeout = 5 * time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadRuns(dir string) tea.Cmd {
	return func() tea.Msg {
		ws, err := workspace.Load(dir)
		if err != nil {
			return runsLoadedMsg{root: dir, err: err}
		}
		refs, err := ws.Store.ListRuns()
		return runsLoadedMsg{root: ws.Root, refs: refs, err: err}
	}
}

func listenBatch(ch <-chan batchDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return batchDoneMsg{err: errors.New("batch channel closed")}
		}
		return msg
	}
}

// startBatchAsync runs the configured batch of dir in the background and
// reports through the returned command.
func startBatchAsync(dir string, log *slog.Logger, debug bool) tea.Cmd {
	ch := make(chan batchDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		ws, err := workspace.Load(dir)
		if err != nil {
			log.Error("tui.batch.load_workspace_failed", "err", err)
			ch <- batchDoneMsg{err: err}
			return
		}

		log.Info("tui.batch.start", "workspace", ws.Root, "found", ws.Found, "debug", debug)

		ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
		defer cancel()

		run, id, execErr := ws.Batch(log, true).Execute(ctx, ws.Request())
		if execErr != nil {
			log.Error("tui.batch.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("tui.batch.ok", "saved_id", id, "lines", run.Summary.Lines)
		}

		if debug {
			for _, rec := range run.Records {
				if rec.Outcome != domain.OutcomeSuccess {
					log.Debug("tui.batch.line_failed", "line", rec.Number, "outcome", string(rec.Outcome), "reason", rec.Reason)
				}
			}
		}

		ch <- batchDoneMsg{run: run, id: id, err: execErr}
	}()

	return listenBatch(ch)
}
