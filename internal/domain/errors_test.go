package domain

import (
	"errors"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "fsstream.open_input",
		Kind: KindResource,
		Path: "Input.txt",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindResource {
		t.Fatalf("expected kind %s", KindResource)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig, Path: "romcalc.yaml", Err: ErrInvalidConfig}
	want := "config.load: invalid_config (path=romcalc.yaml): invalid config"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	var nilErr *OpError
	if got := nilErr.Error(); got != "<nil>" {
		t.Fatalf("nil Error() = %q", got)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{
		Op:   "workspacefinder.findroot",
		Kind: KindNotFound,
		Err:  ErrNotFound,
	}

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match op error")
	}
	if IsKind(err, KindResource) {
		t.Fatalf("expected IsKind not to match a different kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected IsKind false for plain errors")
	}
}
