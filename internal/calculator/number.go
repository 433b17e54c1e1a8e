package calculator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is an integer or floating-point operand. The zero value is the
// integer 0.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

// Int returns an integer Number.
func Int(v int64) Number {
	return Number{i: v}
}

// Float returns a floating-point Number.
func Float(v float64) Number {
	return Number{f: v, isFloat: true}
}

// IsFloat reports whether n holds a floating-point value.
func (n Number) IsFloat() bool {
	return n.isFloat
}

// Float64 returns n converted to float64.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Int64 returns the integer value of n. ok is false for floats.
func (n Number) Int64() (v int64, ok bool) {
	if n.isFloat {
		return 0, false
	}
	return n.i, true
}

// IsZero reports whether n equals zero. Both 0.0 and -0.0 count.
func (n Number) IsZero() bool {
	if n.isFloat {
		return n.f == 0
	}
	return n.i == 0
}

// String renders n the way the history log shows it: integers without a
// decimal point, floats with their shortest round-trip digits.
func (n Number) String() string {
	if !n.isFloat {
		return strconv.FormatInt(n.i, 10)
	}
	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	// Shortest digits in exponent form tell us the decimal exponent.
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseNumber parses a numeric literal. Literals without a fraction or
// exponent are integers; everything else is a float.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, errors.New("empty number")
	}

	if !strings.ContainsAny(s, ".eEiInN") {
		v, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return Int(v), nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return Number{}, fmt.Errorf("parse %q: %w", s, err)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return Float(v), nil
}

// MarshalJSON writes finite values as JSON numbers and non-finite values as
// the strings "inf", "-inf" and "nan".
func (n Number) MarshalJSON() ([]byte, error) {
	if n.isFloat && (math.IsNaN(n.f) || math.IsInf(n.f, 0)) {
		return json.Marshal(formatFloat(n.f))
	}
	return []byte(n.String()), nil
}

// UnmarshalJSON accepts JSON numbers only.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] == '"' {
		return fmt.Errorf("calculator: operand must be a JSON number, got %s", data)
	}

	v, err := ParseNumber(string(data))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
