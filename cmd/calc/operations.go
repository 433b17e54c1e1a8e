package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-calculator/internal/calculator"
)

type operation struct {
	name  string
	short string
	apply func(c *calculator.Calculator, a, b calculator.Number) (calculator.Number, error)
}

var operations = []operation{
	{
		name:  "add",
		short: "Print A + B",
		apply: func(c *calculator.Calculator, a, b calculator.Number) (calculator.Number, error) {
			return c.Add(a, b), nil
		},
	},
	{
		name:  "subtract",
		short: "Print A - B",
		apply: func(c *calculator.Calculator, a, b calculator.Number) (calculator.Number, error) {
			return c.Subtract(a, b), nil
		},
	},
	{
		name:  "multiply",
		short: "Print A × B",
		apply: func(c *calculator.Calculator, a, b calculator.Number) (calculator.Number, error) {
			return c.Multiply(a, b), nil
		},
	},
	{
		name:  "divide",
		short: "Print A ÷ B",
		apply: func(c *calculator.Calculator, a, b calculator.Number) (calculator.Number, error) {
			return c.Divide(a, b)
		},
	},
	{
		name:  "power",
		short: "Print A raised to B",
		apply: func(c *calculator.Calculator, a, b calculator.Number) (calculator.Number, error) {
			return c.Power(a, b), nil
		},
	},
}

func newOperationCmd(op operation, opts *options) *cobra.Command {
	example := fmt.Sprintf(`  calc %[1]s 6 3
  calc %[1]s 2.5 4
  # negative operands go after -- so they are not read as flags
  calc %[1]s -- -6 3`, op.name)

	return &cobra.Command{
		Use:     op.name + " A B",
		Short:   op.short,
		Example: example,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := calculator.ParseNumber(args[0])
			if err != nil {
				return fmt.Errorf("operand A: %w", err)
			}
			b, err := calculator.ParseNumber(args[1])
			if err != nil {
				return fmt.Errorf("operand B: %w", err)
			}

			calc, done, err := newCalculator(opts)
			if err != nil {
				return err
			}
			defer done()

			result, err := op.apply(calc, a, b)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.history {
				printHistory(out, calc.History())
				return nil
			}
			fmt.Fprintln(out, result)
			return nil
		},
	}
}
