package fsworkspace

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/app/template"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct {
	cfg domain.Config
}

type Option func(*Initializer)

// WithConfig changes the values rendered into romcalc.yaml.
func WithConfig(cfg domain.Config) Option {
	return func(i *Initializer) { i.cfg = cfg }
}

func NewInitializer(opts ...Option) *Initializer {
	i := &Initializer{cfg: domain.DefaultConfig()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init lays out runs/, .romcalc/logs, romcalc.yaml and a sample input file
// under spec.Root. Existing files are left alone unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, i.cfg.Paths.RunsDir),
		filepath.Join(root, ".romcalc", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initError(d, err)
		}
	}

	if err := ensureGitignore(root, i.cfg.Paths.RunsDir); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}

	vars := template.ConfigVars(i.cfg)
	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		if rel == "Input.txt" {
			rel = i.cfg.Paths.Input
		}
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return initError(dst, err)
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		out, err := template.RenderString(string(b), vars)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return initError(dst, err)
		}
		return nil
	})
}

func initError(path string, err error) error {
	return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: path, Err: err}
}

func ensureGitignore(root, runsDir string) error {
	const header = "# romcalc"
	entries := []string{
		strings.TrimSuffix(filepath.ToSlash(runsDir), "/") + "/",
		".romcalc/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
