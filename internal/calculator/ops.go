package calculator

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("Cannot divide by zero")

// Add returns a + b.
func Add(a, b Number) Number {
	if a.isFloat || b.isFloat {
		return Float(a.Float64() + b.Float64())
	}
	return Int(a.i + b.i)
}

// Subtract returns a - b.
func Subtract(a, b Number) Number {
	if a.isFloat || b.isFloat {
		return Float(a.Float64() - b.Float64())
	}
	return Int(a.i - b.i)
}

// Multiply returns a * b.
func Multiply(a, b Number) Number {
	if a.isFloat || b.isFloat {
		return Float(a.Float64() * b.Float64())
	}
	return Int(a.i * b.i)
}

// Divide returns the floating-point quotient a / b.
func Divide(a, b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	return Float(a.Float64() / b.Float64()), nil
}

// Power returns a raised to b. Integer operands with a non-negative exponent
// stay integers; a negative integer exponent yields a float.
func Power(a, b Number) Number {
	if a.isFloat || b.isFloat || b.i < 0 {
		return Float(math.Pow(a.Float64(), b.Float64()))
	}
	return Int(ipow(a.i, b.i))
}

// ipow computes base^exp by squaring. Overflow wraps like any int64 product.
func ipow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
