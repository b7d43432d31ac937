package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp, "runs"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	want := "# romcalc\nruns/\n.romcalc/\n"
	if string(b) != want {
		t.Fatalf("expected %q, got %q", want, string(b))
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	existing := "node_modules/\n# romcalc\nruns/"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp, "runs/"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)

	if !strings.HasPrefix(s, "node_modules/\n") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# romcalc") != 1 {
		t.Fatalf("expected 1 header, got:\n%s", s)
	}
	if strings.Count(s, "runs/") != 1 {
		t.Fatalf("expected runs/ not duplicated, got:\n%s", s)
	}
	if !strings.HasSuffix(s, ".romcalc/\n") {
		t.Fatalf("expected .romcalc/ appended, got:\n%s", s)
	}
}

func TestEnsureGitignore_NoopWhenComplete(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	existing := "runs/\n.romcalc/\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp, "runs"); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != existing {
		t.Fatalf("expected file untouched, got %q", string(b))
	}
}
