package tui

import "github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type runsLoadedMsg struct {
	root string
	refs []domain.RunRef
	err  error
}

type batchDoneMsg struct {
	run domain.RunResult
	id  string
	err error
}
