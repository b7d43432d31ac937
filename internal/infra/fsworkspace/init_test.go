package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "romcalc.yaml"))
	assertFileExists(t, filepath.Join(tmp, "Input.txt"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	for _, d := range []string{"runs", filepath.Join(".romcalc", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected dir %s, err=%v", d, err)
		}
	}

	b, err := os.ReadFile(filepath.Join(tmp, "romcalc.yaml"))
	if err != nil {
		t.Fatalf("read romcalc.yaml: %v", err)
	}
	if strings.Contains(string(b), "{{") {
		t.Fatalf("placeholders left in romcalc.yaml:\n%s", b)
	}
}

func TestInitializer_Init_ConfigRoundTrips(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Paths.Input = "data/numerals.txt"
	cfg.Trace.Enabled = false

	if err := NewInitializer(WithConfig(cfg)).Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "data", "numerals.txt"))

	got, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if got != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "romcalc.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing romcalc.yaml: %v", err)
	}

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	b, _ := os.ReadFile(cfgPath)
	if string(b) != "custom\n" {
		t.Fatalf("expected existing file kept, got %q", b)
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init force error: %v", err)
	}
	b, _ = os.ReadFile(cfgPath)
	if !strings.HasPrefix(string(b), "romcalc:") {
		t.Fatalf("expected file overwritten, got %q", b)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("expected file, got dir: %s", path)
	}
}
