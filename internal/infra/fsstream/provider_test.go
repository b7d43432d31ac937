package fsstream

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

func TestOpenInput_RelativeToRoot(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "Input.txt"), []byte("X + V\n"), 0o644))

	rc, err := NewProvider(tmp).OpenInput("Input.txt")
	require.NoError(t, err)
	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "X + V\n", string(b))
}

func TestOpenInput_Missing(t *testing.T) {
	_, err := NewProvider(t.TempDir()).OpenInput("nope.txt")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestCreateOutput_CreatesParentsAndTruncates(t *testing.T) {
	tmp := t.TempDir()
	p := NewProvider(tmp)
	path := filepath.Join("out", "nested", "Output.txt")

	w, err := p.CreateOutput(path)
	require.NoError(t, err)
	_, _ = io.WriteString(w, "a long first version\n")
	require.NoError(t, w.Close())

	w, err = p.CreateOutput(path)
	require.NoError(t, err)
	_, _ = io.WriteString(w, "short\n")
	require.NoError(t, w.Close())

	b, err := os.ReadFile(filepath.Join(tmp, path))
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(b))
}

func TestCreateOutput_ParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "blocker"), []byte("x"), 0o644))

	_, err := NewProvider(tmp).CreateOutput(filepath.Join("blocker", "Output.txt"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
}

func TestStdio(t *testing.T) {
	var out bytes.Buffer
	p := NewProvider(t.TempDir(), WithStdio(strings.NewReader("I + I\n"), &out))

	rc, err := p.OpenInput(Stdio)
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	assert.Equal(t, "I + I\n", string(b))
	require.NoError(t, rc.Close())

	w, err := p.CreateOutput(Stdio)
	require.NoError(t, err)
	_, _ = io.WriteString(w, "Two\n")
	require.NoError(t, w.Close())
	assert.Equal(t, "Two\n", out.String())
}

func TestResolve(t *testing.T) {
	p := NewProvider("/ws")
	assert.Equal(t, filepath.Join("/ws", "Input.txt"), p.Resolve("Input.txt"))
	assert.Equal(t, "/abs/in.txt", p.Resolve("/abs/in.txt"))
	assert.Equal(t, Stdio, p.Resolve(Stdio))
	assert.Equal(t, "rel.txt", NewProvider("").Resolve("rel.txt"))
}
