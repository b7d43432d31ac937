package ports

import "github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
