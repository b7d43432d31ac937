package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

// userError turns err into the one-line message printed on stderr.
func userError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "Interrupted"
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return err.Error()
	}

	where := ""
	if strings.TrimSpace(oe.Path) != "" {
		where = " (" + filepath.Base(oe.Path) + ")"
	}

	switch oe.Kind {
	case domain.KindResource:
		return "Cannot open stream" + where + ": " + rootCause(oe.Err)
	case domain.KindNotFound:
		if strings.HasPrefix(oe.Op, "runstore") {
			return "Run not found" + where
		}
		return "Not found" + where
	case domain.KindInvalidConfig:
		return "Invalid config" + where + ": " + rootCause(oe.Err)
	case domain.KindInvalidInput:
		return "Invalid input: " + rootCause(oe.Err)
	default:
		return err.Error()
	}
}

// rootCause returns the innermost message, skipping the acquisition sentinel.
func rootCause(err error) string {
	if err == nil {
		return "unknown error"
	}
	for {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Err != nil {
			err = oe.Err
			continue
		}
		break
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			if !errors.Is(e, domain.ErrResourceAcquisition) {
				return rootCause(e)
			}
		}
	}
	return err.Error()
}
