package usecase

import (
	"path/filepath"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute lays out a workspace under root (default: current directory) and
// returns its absolute path.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Path: root,
			Err:  err,
		}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
		return "", err
	}
	return abs, nil
}
