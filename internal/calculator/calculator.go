package calculator

import (
	"fmt"

	"go.uber.org/zap"
)

// Operator symbols used in history records.
const (
	symbolAdd      = "+"
	symbolSubtract = "-"
	symbolMultiply = "×"
	symbolDivide   = "÷"
	symbolPower    = "^"
)

// Calculator performs arithmetic and keeps an ordered log of every
// successful operation. It is not safe for concurrent use.
type Calculator struct {
	history []string
	logger  *zap.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger makes the calculator log each recorded operation at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Calculator with an empty history.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		history: make([]string, 0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add returns a + b and records it.
func (c *Calculator) Add(a, b Number) Number {
	result := Add(a, b)
	c.record(a, symbolAdd, b, result)
	return result
}

// Subtract returns a - b and records it.
func (c *Calculator) Subtract(a, b Number) Number {
	result := Subtract(a, b)
	c.record(a, symbolSubtract, b, result)
	return result
}

// Multiply returns a × b and records it.
func (c *Calculator) Multiply(a, b Number) Number {
	result := Multiply(a, b)
	c.record(a, symbolMultiply, b, result)
	return result
}

// Divide fails with ErrDivisionByZero when b is zero, leaving the history
// untouched.
func (c *Calculator) Divide(a, b Number) (Number, error) {
	result, err := Divide(a, b)
	if err != nil {
		return Number{}, err
	}
	c.record(a, symbolDivide, b, result)
	return result, nil
}

// Power returns a raised to b and records it.
func (c *Calculator) Power(a, b Number) Number {
	result := Power(a, b)
	c.record(a, symbolPower, b, result)
	return result
}

// History returns a copy of the log, oldest entry first.
func (c *Calculator) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Len returns the number of entries in the log.
func (c *Calculator) Len() int {
	return len(c.history)
}

// ClearHistory empties the log.
func (c *Calculator) ClearHistory() {
	c.history = make([]string, 0)
	c.logger.Debug("history cleared")
}

// last returns the newest entry, or "" when the log is empty.
func (c *Calculator) last() string {
	if len(c.history) == 0 {
		return ""
	}
	return c.history[len(c.history)-1]
}

func (c *Calculator) record(a Number, symbol string, b, result Number) {
	entry := formatRecord(a, symbol, b, result)
	c.history = append(c.history, entry)
	c.logger.Debug("operation recorded",
		zap.String("record", entry),
		zap.Int("history_len", len(c.history)),
	)
}

func formatRecord(a Number, symbol string, b, result Number) string {
	return fmt.Sprintf("%s %s %s = %s", a, symbol, b, result)
}
