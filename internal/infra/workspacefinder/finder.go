package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

// Finder locates a romcalc workspace root by searching for romcalc.yaml upward.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// RootOrDir returns the enclosing workspace root of startDir, or startDir
// itself when no romcalc.yaml exists above it. Loose files can then be
// processed without running init first.
func (f *Finder) RootOrDir(startDir string) (string, bool, error) {
	root, err := f.FindRoot(startDir)
	if err == nil {
		return root, true, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return "", false, err
	}
	abs, absErr := filepath.Abs(startDir)
	if absErr != nil {
		return "", false, &domain.OpError{Op: "workspacefinder.rootordir", Kind: domain.KindExecution, Err: absErr}
	}
	return abs, false, nil
}
