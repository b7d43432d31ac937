package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/logger"
)

func TestLoad_WithoutConfigUsesDefaults(t *testing.T) {
	tmp := t.TempDir()

	ws, err := Load(tmp)
	require.NoError(t, err)
	assert.False(t, ws.Found)
	assert.Equal(t, tmp, ws.Root)
	assert.Equal(t, domain.DefaultConfig(), ws.Cfg)

	req := ws.Request()
	assert.Equal(t, "Input.txt", req.InputPath)
	assert.Equal(t, "Process.txt", req.ProcessLogPath)
}

func TestLoad_ConfigThenEnv(t *testing.T) {
	tmp := t.TempDir()
	nested := filepath.Join(tmp, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	cfg := "romcalc:\n  paths:\n    input: in.txt\n    output: out.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "romcalc.yaml"), []byte(cfg), 0o644))
	t.Setenv("ROMCALC_TRACE", "false")

	ws, err := Load(nested)
	require.NoError(t, err)
	assert.True(t, ws.Found)
	assert.Equal(t, tmp, ws.Root)
	assert.Equal(t, "in.txt", ws.Cfg.Paths.Input)
	assert.Equal(t, "out.txt", ws.Cfg.Paths.Output)

	req := ws.Request()
	assert.Empty(t, req.ProcessLogPath, "trace disabled by env")
}

func TestBatch_SavesArtifact(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "Input.txt"), []byte("X + V\nX $ V\n"), 0o644))

	ws := New(tmp, true, domain.DefaultConfig())
	run, id, err := ws.Batch(logger.Discard(), true).Execute(context.Background(), ws.Request())
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 2, run.Summary.Lines)

	out, err := os.ReadFile(filepath.Join(tmp, "Output.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Fifteen\nInvalid operation in line: X $ V\n", string(out))

	art, err := ws.Store.LoadRun(id)
	require.NoError(t, err)
	assert.Equal(t, run.RunID, art.RunID)
}

func TestBatch_SaveDisabledByConfig(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "Input.txt"), []byte("I + I\n"), 0o644))

	cfg := domain.DefaultConfig()
	cfg.Runs.Save = false
	ws := New(tmp, true, cfg)

	_, id, err := ws.Batch(nil, true).Execute(context.Background(), ws.Request())
	require.NoError(t, err)
	assert.Empty(t, id)

	refs, err := ws.Store.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestRel(t *testing.T) {
	tmp := t.TempDir()
	ws := New(tmp, true, domain.DefaultConfig())

	assert.Equal(t, "Input.txt", ws.Rel("Input.txt"))
	assert.Equal(t, "Input.txt", ws.Rel(filepath.Join(tmp, "Input.txt")))
	assert.Equal(t, "-", ws.Rel("-"))
	assert.Equal(t, "/elsewhere/x.txt", ws.Rel("/elsewhere/x.txt"))
}
