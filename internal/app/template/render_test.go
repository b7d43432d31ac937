package template

import (
	"testing"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("input: {{input}}", map[string]string{"input": "Input.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "input: Input.txt" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ input }} -> {{output}}", ConfigVars(domain.DefaultConfig()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Input.txt -> Output.txt" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringBooleans(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Trace.Enabled = false

	out, err := RenderString("enabled: {{trace}}", ConfigVars(cfg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "enabled: false" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringErrors(t *testing.T) {
	for _, in := range []string{"Hello {{name}}", "open {{input", "empty {{ }}"} {
		_, err := RenderString(in, map[string]string{"input": "x"})
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%q: expected KindInvalidConfig, got %v", in, err)
		}
	}
}

func TestRenderStringEmpty(t *testing.T) {
	out, err := RenderString("", nil)
	if err != nil || out != "" {
		t.Fatalf("expected empty result, got %q err=%v", out, err)
	}
}
