package runstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"
	tsLayout       = "20060102T150405Z"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  cfg.Runs.Index,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	if filepath.IsAbs(s.runsDirName) {
		return s.runsDirName
	}
	return filepath.Join(s.rootDir, s.runsDirName)
}

// SaveRun writes run as runs/<timestamp>_<input-slug>.json and returns the id
// (the file name without extension). Runs saved within the same second get a
// numeric suffix.
func (s *JSONStore) SaveRun(run domain.RunArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}

	slug := slugify(strings.TrimSuffix(filepath.Base(run.InputPath), filepath.Ext(run.InputPath)))
	if slug == "" {
		slug = "run"
	}

	id, path := s.freeName(dir, ts.Format(tsLayout)+"_"+slug)
	toSave.ID = id

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), toSave)
	}

	return id, nil
}

func (s *JSONStore) freeName(dir, base string) (string, string) {
	id := base
	for n := 2; ; n++ {
		path := filepath.Join(dir, id+".json")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return id, path
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

type indexEntry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Input     string    `json:"input"`
	Lines     int       `json:"lines"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"started_at"`
}

func (s *JSONStore) appendIndex(dir, id, filename string, run domain.RunArtifact) error {
	line, err := json.Marshal(indexEntry{
		ID:        id,
		File:      filename,
		Input:     run.InputPath,
		Lines:     run.Summary.Lines,
		Failed:    run.Summary.Failed(),
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListRuns returns saved runs, newest first. A missing runs directory is an
// empty list.
func (s *JSONStore) ListRuns() ([]domain.RunRef, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{Op: "runstore.list", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	var refs []domain.RunRef
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		ref := domain.RunRef{ID: id, Path: filepath.Join(dir, name)}
		if len(id) >= len(tsLayout) {
			if ts, err := time.Parse(tsLayout, id[:len(tsLayout)]); err == nil {
				ref.StartedAt = ts
			}
		}
		refs = append(refs, ref)
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].ID > refs[j].ID })
	return refs, nil
}

// LoadRun reads the artifact saved under id.
func (s *JSONStore) LoadRun(id string) (domain.RunArtifact, error) {
	id = strings.TrimSpace(id)
	if id == "" || id != filepath.Base(id) {
		return domain.RunArtifact{}, &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("invalid run id %q", id),
		}
	}

	path := filepath.Join(s.dir(), strings.TrimSuffix(id, ".json")+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.RunArtifact{}, &domain.OpError{Op: "runstore.load", Kind: kind, Path: path, Err: err}
	}

	var art domain.RunArtifact
	if err := json.Unmarshal(b, &art); err != nil {
		return domain.RunArtifact{}, &domain.OpError{Op: "runstore.decode", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if art.ID == "" {
		art.ID = strings.TrimSuffix(id, ".json")
	}
	return art, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
