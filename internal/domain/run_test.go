package domain

import "testing"

func TestRunSummary_Add(t *testing.T) {
	var s RunSummary
	for _, line := range []string{"X + V", "I + I", "XA + V", "X $ V", "bad"} {
		s.Add(ProcessLine(1, line))
	}

	want := RunSummary{Lines: 5, Succeeded: 2, InvalidNumeral: 1, InvalidOperation: 1, InvalidFormat: 1}
	if s != want {
		t.Fatalf("summary = %+v, want %+v", s, want)
	}
	if s.Failed() != 3 {
		t.Fatalf("expected 3 failed, got %d", s.Failed())
	}
}
