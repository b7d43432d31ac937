package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			if strings.HasPrefix(oe.Op, "runstore") {
				return "Run not found"
			}
			if strings.HasPrefix(oe.Op, "fsstream") {
				return "File not found: " + filepath.Base(oe.Path)
			}
			return "Not found"

		case domain.KindResource:
			var inner *domain.OpError
			if errors.As(oe.Err, &inner) && inner.Kind == domain.KindNotFound {
				return "Input not found: " + filepath.Base(oe.Path)
			}
			return "Cannot open " + filepath.Base(oe.Path)

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
