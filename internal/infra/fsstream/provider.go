package fsstream

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
)

// Stdio is the path that selects STDIN for input and STDOUT for output.
const Stdio = "-"

// Provider opens batch streams on the local filesystem. Relative paths are
// resolved against the workspace root.
type Provider struct {
	root   string
	stdin  io.Reader
	stdout io.Writer
}

type Option func(*Provider)

// WithStdio replaces the process STDIN/STDOUT, useful for tests.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(p *Provider) {
		p.stdin = in
		p.stdout = out
	}
}

func NewProvider(root string, opts ...Option) *Provider {
	p := &Provider{root: root, stdin: os.Stdin, stdout: os.Stdout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.StreamProvider = (*Provider)(nil)

func (p *Provider) OpenInput(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(p.stdin), nil
	}

	full := p.Resolve(path)
	f, err := os.Open(full)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{Op: "fsstream.open_input", Kind: kind, Path: full, Err: err}
	}
	return f, nil
}

// CreateOutput truncates or creates path, creating missing parent directories.
func (p *Provider) CreateOutput(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{p.stdout}, nil
	}

	full := p.Resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, &domain.OpError{Op: "fsstream.mkdir", Kind: domain.KindExecution, Path: full, Err: err}
	}
	f, err := os.OpenFile(full, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &domain.OpError{Op: "fsstream.create_output", Kind: domain.KindExecution, Path: full, Err: err}
	}
	return f, nil
}

// Resolve returns path joined to the workspace root unless it is absolute or
// the stdio marker.
func (p *Provider) Resolve(path string) string {
	if path == Stdio || filepath.IsAbs(path) || p.root == "" {
		return path
	}
	return filepath.Join(p.root, path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
