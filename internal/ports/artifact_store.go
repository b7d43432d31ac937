package ports

import "github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"

// ArtifactStore persists run artifacts for reproducibility.
type ArtifactStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
	ListRuns() ([]domain.RunRef, error)
	LoadRun(id string) (domain.RunArtifact, error)
}
