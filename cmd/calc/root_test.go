package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go-calculator/internal/calculator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

const wantDemo = `Calculator Demo
========================================
5 + 3 = 8
10 - 4 = 6
6 × 7 = 42
15 ÷ 3 = 5.0
2 ^ 8 = 256

History:
  5 + 3 = 8
  10 - 4 = 6
  6 × 7 = 42
  15 ÷ 3 = 5.0
  2 ^ 8 = 256
`

func TestDemoOutput(t *testing.T) {
	for _, args := range [][]string{{"demo"}, {}} {
		got, err := execute(t, args...)
		if err != nil {
			t.Fatalf("calc %v: %v", args, err)
		}
		if got != wantDemo {
			t.Fatalf("calc %v: unexpected output:\n%s", args, got)
		}
	}
}

func TestOperationCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"add", "2", "3"}, want: "5\n"},
		{args: []string{"subtract", "--", "-1", "4"}, want: "-5\n"},
		{args: []string{"multiply", "2.5", "4"}, want: "10.0\n"},
		{args: []string{"divide", "7", "2"}, want: "3.5\n"},
		{args: []string{"power", "2", "10"}, want: "1024\n"},
		{args: []string{"power", "--history", "2", "8"}, want: "History:\n  2 ^ 8 = 256\n"},
	}

	for _, tc := range tests {
		t.Run(tc.args[0], func(t *testing.T) {
			got, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("calc %v: %v", tc.args, err)
			}
			if got != tc.want {
				t.Fatalf("calc %v: expected %q, got %q", tc.args, tc.want, got)
			}
		})
	}
}

func TestDivideCommandByZero(t *testing.T) {
	_, err := execute(t, "divide", "10", "0")
	if !errors.Is(err, calculator.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestOperationCommandRejectsBadOperand(t *testing.T) {
	if _, err := execute(t, "add", "two", "3"); err == nil {
		t.Fatal("expected error for non-numeric operand")
	}
	if _, err := execute(t, "add", "2"); err == nil {
		t.Fatal("expected error for missing operand")
	}
}

func TestOperationHelpShowsNegativeOperandExample(t *testing.T) {
	for _, op := range operations {
		t.Run(op.name, func(t *testing.T) {
			got, err := execute(t, op.name, "--help")
			if err != nil {
				t.Fatalf("calc %s --help: %v", op.name, err)
			}
			want := "calc " + op.name + " -- -6 3"
			if !strings.Contains(got, want) {
				t.Fatalf("expected help to contain %q, got:\n%s", want, got)
			}
		})
	}
}

func TestOperationCommandAcceptsNegativeOperandsAfterDoubleDash(t *testing.T) {
	got, err := execute(t, "add", "--", "-6", "3")
	if err != nil {
		t.Fatalf("calc add -- -6 3: %v", err)
	}
	if got != "-3\n" {
		t.Fatalf("expected %q, got %q", "-3\n", got)
	}
}
