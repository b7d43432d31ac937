package tui

import (
	"errors"
	"testing"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{
			"workspace not found",
			&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Workspace not found",
		},
		{
			"run not found",
			&domain.OpError{Op: "runstore.load", Kind: domain.KindNotFound, Path: "/ws/runs/x.json"},
			"Run not found",
		},
		{
			"yaml with line",
			&domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: "/ws/romcalc.yaml",
				Err:  errors.New("yaml: line 3: mapping values are not allowed in this context"),
			},
			"Invalid YAML at romcalc.yaml line 3",
		},
		{
			"env parse",
			&domain.OpError{Op: "workspacefinder.applyenv", Kind: domain.KindInvalidConfig, Err: errors.New("parse env: bad bool")},
			"Invalid config",
		},
		{
			"resource other",
			&domain.OpError{Op: "batch.open_output", Kind: domain.KindResource, Path: "out/Output.txt", Err: domain.ErrResourceAcquisition},
			"Cannot open Output.txt",
		},
		{"plain yaml", errors.New("yaml: line 7: did not find expected key"), "Invalid YAML line 7"},
		{"other", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Fatalf("userMessage()=%q want %q", got, c.want)
			}
		})
	}
}
