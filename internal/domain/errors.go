package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrExecution           = errors.New("execution error")
	ErrResourceAcquisition = errors.New("resource acquisition failed")

	ErrInvalidFormat   = errors.New("invalid input format")
	ErrInvalidNumeral  = errors.New("invalid roman numeral")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrOutOfRange      = errors.New("number out of range")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
	KindResource      ErrorKind = "resource"
	KindInvalidInput  ErrorKind = "invalid_input"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
