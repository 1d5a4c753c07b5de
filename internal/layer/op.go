package layer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnsetOperand is returned when an arithmetic op is applied to a value
	// no earlier layer has set.
	ErrUnsetOperand = errors.New("arithmetic on unset value")
	// ErrDivideByZero is returned by Apply for "/0".
	ErrDivideByZero = errors.New("division by zero")
	// ErrBadOp is returned by ParseOp for malformed operations.
	ErrBadOp = errors.New("malformed operation")
	// ErrNonFinite is returned by Apply when the result is NaN or infinite.
	ErrNonFinite = errors.New("result is not finite")
)

// Kind selects how an Op combines with the value composed so far.
type Kind uint8

const (
	Replace Kind = iota
	Add
	Sub
	Mul
	Div
)

var kindPrefix = [...]string{Replace: "=", Add: "+", Sub: "-", Mul: "*", Div: "/"}

// Op is one layer's contribution to a scalar.
type Op struct {
	Kind    Kind
	Operand float64
}

// Set returns a replace op.
func Set(v float64) Op { return Op{Kind: Replace, Operand: v} }

// ParseOp parses "12.5", "=12.5", "+1", "-1", "*1.1" or "/2". A bare number
// replaces; a leading sign always means add or subtract.
func ParseOp(s string) (Op, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Op{}, fmt.Errorf("%w: empty", ErrBadOp)
	}

	kind := Replace
	body := s
	switch s[0] {
	case '=':
		body = s[1:]
	case '+':
		kind, body = Add, s[1:]
	case '-':
		kind, body = Sub, s[1:]
	case '*':
		kind, body = Mul, s[1:]
	case '/':
		kind, body = Div, s[1:]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(body), 64)
	if err != nil {
		return Op{}, fmt.Errorf("%w: %q", ErrBadOp, s)
	}
	return Op{Kind: kind, Operand: v}, nil
}

// Apply combines the op with the current value. set reports whether cur was
// written by an earlier layer.
func (o Op) Apply(cur float64, set bool) (float64, error) {
	v, err := o.apply(cur, set)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s on %g: %w", o, cur, ErrNonFinite)
	}
	return v, nil
}

func (o Op) apply(cur float64, set bool) (float64, error) {
	if o.Kind == Replace {
		return o.Operand, nil
	}
	if !set {
		return 0, fmt.Errorf("%s: %w", o, ErrUnsetOperand)
	}
	switch o.Kind {
	case Add:
		return cur + o.Operand, nil
	case Sub:
		return cur - o.Operand, nil
	case Mul:
		return cur * o.Operand, nil
	case Div:
		if o.Operand == 0 {
			return 0, ErrDivideByZero
		}
		return cur / o.Operand, nil
	}
	return 0, fmt.Errorf("%w: kind %d", ErrBadOp, o.Kind)
}

func (o Op) String() string {
	prefix := "?"
	if int(o.Kind) < len(kindPrefix) {
		prefix = kindPrefix[o.Kind]
	}
	return prefix + strconv.FormatFloat(o.Operand, 'g', -1, 64)
}

// MarshalText encodes the op in the form ParseOp reads.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an op written by MarshalText or by hand.
func (o *Op) UnmarshalText(text []byte) error {
	op, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
