package tui

import (
	"strings"
	"testing"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

func TestClampString(t *testing.T) {
	if got := clampString("MCMXCIV", 4); got != "MCMX…" {
		t.Fatalf("unexpected clamp: %q", got)
	}
	if got := clampString("XV", 4); got != "XV" {
		t.Fatalf("short strings must be untouched: %q", got)
	}
	if got := clampString("XV", 0); got != "" {
		t.Fatalf("zero limit must be empty: %q", got)
	}
}

func TestRenderRecord(t *testing.T) {
	th := DefaultTheme()
	rec := domain.ProcessLine(1, "XII * III")

	plain := renderRecord(th, rec, false)
	if !strings.Contains(plain, "Thirty Six") || strings.Contains(plain, "Processing line") {
		t.Fatalf("unexpected render without trace:\n%s", plain)
	}

	traced := renderRecord(th, rec, true)
	for _, want := range []string{"Processing line: XII * III", "Converted: XII -> 12, III -> 3", "Result: 36"} {
		if !strings.Contains(traced, want) {
			t.Fatalf("expected %q in:\n%s", want, traced)
		}
	}
}

func TestRenderFailures_Limit(t *testing.T) {
	var recs []domain.LineRecord
	for i := 1; i <= 4; i++ {
		recs = append(recs, domain.ProcessLine(i, "bad"))
	}

	out := renderFailures(DefaultTheme(), recs, 2)
	if strings.Count(out, "line ") != 2 {
		t.Fatalf("expected 2 failures listed:\n%s", out)
	}
	if !strings.Contains(out, "more in the process log") {
		t.Fatalf("expected overflow hint:\n%s", out)
	}
}

func TestRenderRunRefs(t *testing.T) {
	if got := renderRunRefs(nil, 5); got != "(no runs saved)\n" {
		t.Fatalf("unexpected empty render: %q", got)
	}

	refs := []domain.RunRef{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	if got := renderRunRefs(refs, 2); got != "- a\n- b\n… 1 more\n" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	var s domain.RunSummary
	s.Add(domain.ProcessLine(1, "X + V"))
	s.Add(domain.ProcessLine(2, "X / Z"))

	out := renderSummary(s)
	if !strings.Contains(out, "Lines: 2\nOK: 1\nInvalid numeral: 1\n") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}
