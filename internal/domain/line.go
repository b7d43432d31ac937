package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Outcome is the terminal classification of one input line.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeInvalidNumeral   Outcome = "invalid_numeral"
	OutcomeInvalidOperation Outcome = "invalid_operation"
	OutcomeInvalidFormat    Outcome = "invalid_format"
)

// Expression is a line split into its three tokens.
type Expression struct {
	Left     string
	Operator Operator
	Right    string
}

// LineRecord is the result of processing a single line. Decoded is set once
// both numerals have been converted; LeftValue/RightValue are meaningful only
// then.
type LineRecord struct {
	Number int
	Line   string

	Expr       Expression
	Decoded    bool
	LeftValue  int
	RightValue int

	Outcome Outcome
	Value   int
	Words   string
	Reason  string
}

// OutputLine is the text written to the output stream for r, without the
// trailing newline.
func (r LineRecord) OutputLine() string {
	switch r.Outcome {
	case OutcomeSuccess:
		return r.Words
	case OutcomeInvalidNumeral:
		return "Invalid Roman numeral in line: " + r.Line
	case OutcomeInvalidOperation:
		return "Invalid operation in line: " + r.Line
	default:
		return "Invalid input format in line: " + r.Line
	}
}

// TraceLines is the process log entry for r: the raw line, the decoded values
// once validation passed, then the result or the failure.
func (r LineRecord) TraceLines() []string {
	out := []string{"Processing line: " + r.Line}
	if r.Decoded {
		out = append(out, fmt.Sprintf("Converted: %s -> %d, %s -> %d", r.Expr.Left, r.LeftValue, r.Expr.Right, r.RightValue))
	}

	switch r.Outcome {
	case OutcomeSuccess:
		out = append(out, fmt.Sprintf("Result: %d", r.Value))
	case OutcomeInvalidNumeral:
		out = append(out, "Error: Invalid Roman numeral in line.")
	case OutcomeInvalidOperation:
		out = append(out, fmt.Sprintf("Error: Invalid operation '%s' (%s).", r.Expr.Operator, r.Reason))
	default:
		out = append(out, "Error: Invalid input format.")
	}
	return out
}

// CleanLine truncates line at the first rune that is neither printable nor
// whitespace, then drops the line terminator.
func CleanLine(line string) string {
	for i, r := range line {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(line[i:]); size <= 1 {
				line = line[:i]
				break
			}
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			line = line[:i]
			break
		}
	}
	return strings.TrimRight(line, "\r\n")
}

// ParseLine splits line into exactly three whitespace-separated tokens shaped
// <roman> <operator-char> <roman>. The operator token must be a single
// character, which is not checked against the supported set here. Roman tokens
// longer than MaxTokenLen are rejected.
func ParseLine(line string) (Expression, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Expression{}, invalidFormat()
	}
	if utf8.RuneCountInString(fields[0]) > MaxTokenLen || utf8.RuneCountInString(fields[2]) > MaxTokenLen {
		return Expression{}, invalidFormat()
	}
	op := []rune(fields[1])
	if len(op) != 1 {
		return Expression{}, invalidFormat()
	}
	return Expression{Left: fields[0], Operator: Operator(op[0]), Right: fields[2]}, nil
}

func invalidFormat() error {
	return &OpError{Op: "line.parse", Kind: KindInvalidInput, Err: ErrInvalidFormat}
}

// ProcessLine runs one raw input line through cleaning, parsing, validation,
// decoding, evaluation and rendering. It never fails: every problem is folded
// into the record's Outcome.
func ProcessLine(number int, raw string) LineRecord {
	rec := LineRecord{Number: number, Line: CleanLine(raw)}

	expr, err := ParseLine(rec.Line)
	if err != nil {
		return rec.fail(OutcomeInvalidFormat, err)
	}
	rec.Expr = expr

	if !IsValidRoman(expr.Left) || !IsValidRoman(expr.Right) {
		return rec.fail(OutcomeInvalidNumeral, ErrInvalidNumeral)
	}

	if rec.LeftValue, err = RomanToDecimal(expr.Left); err != nil {
		return rec.fail(OutcomeInvalidNumeral, err)
	}
	if rec.RightValue, err = RomanToDecimal(expr.Right); err != nil {
		return rec.fail(OutcomeInvalidNumeral, err)
	}
	rec.Decoded = true

	value, err := Evaluate(rec.LeftValue, rec.RightValue, expr.Operator)
	if err != nil {
		return rec.fail(OutcomeInvalidOperation, err)
	}

	words, err := NumberToWords(value)
	if err != nil {
		return rec.fail(OutcomeInvalidOperation, err)
	}

	rec.Outcome = OutcomeSuccess
	rec.Value = value
	rec.Words = words
	return rec
}

func (r LineRecord) fail(o Outcome, err error) LineRecord {
	r.Outcome = o
	r.Reason = reason(err)
	return r
}

var reasons = []error{
	ErrInvalidFormat,
	ErrInvalidNumeral,
	ErrDivisionByZero,
	ErrUnknownOperator,
	ErrOutOfRange,
}

// reason returns the short description of the first known sentinel in err.
func reason(err error) string {
	for _, s := range reasons {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return err.Error()
}
