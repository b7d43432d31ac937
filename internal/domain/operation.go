package domain

import "fmt"

// Operator is a binary arithmetic operator applied left to right.
type Operator rune

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

func (o Operator) String() string { return string(rune(o)) }

// MarshalText keeps saved artifacts readable: the operator is stored as its
// character rather than a code point.
func (o Operator) MarshalText() ([]byte, error) {
	if o == 0 {
		return []byte{}, nil
	}
	return []byte(o.String()), nil
}

func (o *Operator) UnmarshalText(b []byte) error {
	r := []rune(string(b))
	switch len(r) {
	case 0:
		*o = 0
	case 1:
		*o = Operator(r[0])
	default:
		return fmt.Errorf("operator %q: %w", string(b), ErrUnknownOperator)
	}
	return nil
}

// Evaluate applies op to a and b. Overflow follows native int arithmetic.
// Division truncates toward zero; a zero divisor yields ErrDivisionByZero and an
// unsupported operator yields ErrUnknownOperator. Any returned value, -1
// included, is a computed result.
func Evaluate(a, b int, op Operator) (int, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, &OpError{Op: "operation.evaluate", Kind: KindInvalidInput, Err: ErrDivisionByZero}
		}
		return a / b, nil
	default:
		return 0, &OpError{
			Op:   "operation.evaluate",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("%q: %w", op.String(), ErrUnknownOperator),
		}
	}
}
