package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

type recordingInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (r *recordingInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	r.spec = spec
	r.force = force
	return r.err
}

func TestInitWorkspace_Execute_AbsoluteRoot(t *testing.T) {
	tmp := t.TempDir()
	rec := &recordingInitializer{}

	got, err := NewInitWorkspace(rec).Execute(tmp, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Fatalf("expected root %q, got %q", tmp, got)
	}
	if rec.spec.Root != tmp || !rec.force {
		t.Fatalf("initializer called with %+v force=%v", rec.spec, rec.force)
	}
}

func TestInitWorkspace_Execute_DefaultsToCwd(t *testing.T) {
	rec := &recordingInitializer{}

	got, err := NewInitWorkspace(rec).Execute("  ", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := filepath.Abs(".")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestInitWorkspace_Execute_PropagatesError(t *testing.T) {
	initErr := errors.New("mkdir failed")
	_, err := NewInitWorkspace(&recordingInitializer{err: initErr}).Execute(t.TempDir(), false)
	if !errors.Is(err, initErr) {
		t.Fatalf("expected initErr, got %v", err)
	}
}
