package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-calculator/internal/calculator"
)

type options struct {
	verbose bool
	history bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "calc",
		Short: "Basic arithmetic with an operation log",
		Long: `calc performs addition, subtraction, multiplication, division and
exponentiation on two numbers. Run it without a subcommand for a demo.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log each recorded operation to stderr")
	root.PersistentFlags().BoolVar(&opts.history, "history", false, "print the history log instead of the bare result")

	root.AddCommand(newDemoCmd(opts))
	for _, op := range operations {
		root.AddCommand(newOperationCmd(op, opts))
	}

	return root
}

// newCalculator builds a calculator, attaching a development logger on stderr
// when --verbose is set.
func newCalculator(opts *options) (*calculator.Calculator, func(), error) {
	if !opts.verbose {
		return calculator.New(), func() {}, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}

	return calculator.New(calculator.WithLogger(logger)), func() { _ = logger.Sync() }, nil
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run five sample calculations and print the history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}
}

func runDemo(cmd *cobra.Command, opts *options) error {
	calc, done, err := newCalculator(opts)
	if err != nil {
		return err
	}
	defer done()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Calculator Demo")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	fmt.Fprintf(out, "5 + 3 = %s\n", calc.Add(calculator.Int(5), calculator.Int(3)))
	fmt.Fprintf(out, "10 - 4 = %s\n", calc.Subtract(calculator.Int(10), calculator.Int(4)))
	fmt.Fprintf(out, "6 × 7 = %s\n", calc.Multiply(calculator.Int(6), calculator.Int(7)))

	quotient, err := calc.Divide(calculator.Int(15), calculator.Int(3))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "15 ÷ 3 = %s\n", quotient)

	fmt.Fprintf(out, "2 ^ 8 = %s\n", calc.Power(calculator.Int(2), calculator.Int(8)))

	fmt.Fprintln(out)
	printHistory(out, calc.History())
	return nil
}

func printHistory(out io.Writer, history []string) {
	fmt.Fprintln(out, "History:")
	for _, item := range history {
		fmt.Fprintf(out, "  %s\n", item)
	}
}
