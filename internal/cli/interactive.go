package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"ozzus/scicalc/internal/calculator"
	"ozzus/scicalc/internal/domain"

	"github.com/spf13/cobra"
)

var errInputClosed = errors.New("input closed")

type inputError struct {
	text string
}

func (e *inputError) Error() string {
	return fmt.Sprintf("invalid number: %q", e.text)
}

type promptStep struct {
	op      domain.Operation
	prompts []string
	label   string
	symbol  string
}

var basicSteps = []promptStep{
	{op: domain.OpAdd, prompts: []string{"Enter the first number to add: ", "Enter the second number to add: "}, label: "Sum", symbol: "+"},
	{op: domain.OpSubtract, prompts: []string{"Enter the first number to subtract: ", "Enter the second number to subtract: "}, label: "Difference", symbol: "-"},
	{op: domain.OpMultiply, prompts: []string{"Enter the first number to multiply: ", "Enter the second number to multiply: "}, label: "Product", symbol: "*"},
	{op: domain.OpDivide, prompts: []string{"Enter the first number to divide: ", "Enter the second number to divide: "}, label: "Quotient", symbol: "/"},
}

var advancedSteps = []promptStep{
	{op: domain.OpPower, prompts: []string{"Enter the base: ", "Enter the exponent: "}, label: "Power", symbol: "^"},
	{op: domain.OpSquareRoot, prompts: []string{"Enter the number for the square root: "}, label: "Square root"},
	{op: domain.OpNaturalLog, prompts: []string{"Enter the number for the natural logarithm: "}, label: "Natural logarithm"},
	{op: domain.OpLogBase10, prompts: []string{"Enter the number for the base-10 logarithm: "}, label: "Base-10 logarithm"},
}

type trigDemo struct {
	op    domain.Operation
	label string
	angle float64
	shown string
}

var trigDemos = []trigDemo{
	{op: domain.OpSine, label: "Sine", angle: math.Pi / 2, shown: "π/2"},
	{op: domain.OpCosine, label: "Cosine", angle: math.Pi / 2, shown: "π/2"},
	{op: domain.OpTangent, label: "Tangent", angle: math.Pi / 4, shown: "π/4"},
}

func newInteractiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Walk through every operation with prompted operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, app)
		},
	}
}

func runInteractive(cmd *cobra.Command, app *App) error {
	s := &session{
		calc:   app.Calculator,
		events: app.Events,
		in:     bufio.NewScanner(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
	}

	// The session stops at the first failure, which is reported to the user;
	// the command itself still succeeds.
	if err := s.run(); err != nil {
		if errors.Is(err, errInputClosed) {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Input closed, exiting.")
			return nil
		}
		reportError(s.out, s.events, err)
	}

	return nil
}

type session struct {
	calc   *calculator.Calculator
	events EventLogger
	in     *bufio.Scanner
	out    io.Writer
}

func (s *session) run() error {
	for _, step := range basicSteps {
		if err := s.promptedStep(step); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out, "\n=== Advanced Operations ===")
	for _, step := range advancedSteps {
		if err := s.promptedStep(step); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out, "\n=== Trigonometric Functions ===")
	for _, demo := range trigDemos {
		result, err := s.calc.Calculate(demo.op, demo.angle)
		if err != nil {
			return err
		}
		printResult(s.out, "%s of %s = %s", demo.label, demo.shown, formatResult(result))
	}

	fmt.Fprintln(s.out, "\n=== Error Handling Test ===")
	fmt.Fprintln(s.out, "Attempting to divide by zero:")
	if _, err := s.calc.Divide(5, 0); err != nil {
		return err
	}

	return nil
}

func (s *session) promptedStep(step promptStep) error {
	operands := make([]any, 0, len(step.prompts))
	for _, prompt := range step.prompts {
		v, err := s.readNumber(prompt)
		if err != nil {
			return err
		}
		operands = append(operands, v)
	}

	result, err := s.calc.Calculate(step.op, operands...)
	if err != nil {
		return err
	}

	if len(operands) == 2 {
		printResult(s.out, "%s of %s %s %s = %s",
			step.label,
			formatOperands(operands[:1]),
			step.symbol,
			formatOperands(operands[1:]),
			formatResult(result),
		)
		return nil
	}

	printResult(s.out, "%s of %s = %s", step.label, formatOperands(operands), formatResult(result))
	return nil
}

func (s *session) readNumber(prompt string) (any, error) {
	fmt.Fprint(s.out, prompt)

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return nil, errInputClosed
	}

	text := s.in.Text()
	v := parseOperand(text)
	if _, ok := v.(string); ok {
		return nil, &inputError{text: text}
	}

	return v, nil
}
