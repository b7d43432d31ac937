package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

// ConfigVars exposes cfg as placeholder values for workspace templates.
func ConfigVars(cfg domain.Config) map[string]string {
	return map[string]string{
		"input":       cfg.Paths.Input,
		"output":      cfg.Paths.Output,
		"process_log": cfg.Paths.ProcessLog,
		"runs_dir":    cfg.Paths.RunsDir,
		"trace":       strconv.FormatBool(cfg.Trace.Enabled),
		"save_runs":   strconv.FormatBool(cfg.Runs.Save),
		"index_runs":  strconv.FormatBool(cfg.Runs.Index),
	}
}

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	out.Grow(len(input))
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderError(fmt.Errorf("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError(fmt.Errorf("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(fmt.Errorf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func renderError(err error) error {
	return &domain.OpError{Op: "template.render", Kind: domain.KindInvalidConfig, Err: err}
}
