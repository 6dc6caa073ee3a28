package cli

import (
	"fmt"

	"ozzus/scicalc/internal/domain"

	"github.com/spf13/cobra"
)

func newEvalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <operation> [operand...]",
		Short: "Run a single operation",
		Long: `Run a single operation and print its result.

Operands that are not numbers are passed through as text, so the
calculator reports them as type errors.`,
		Example: `  scicalc eval add 2 3
  scicalc eval power 2 0.5
  scicalc eval sine 1.5707963267948966`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			op := domain.Operation(args[0])

			operands := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				operands = append(operands, parseOperand(arg))
			}

			result, err := app.Calculator.Calculate(op, operands...)
			if err != nil {
				reportError(out, app.Events, err)
				return nil
			}

			printResult(out, "%s(%s) = %s", op, formatOperands(operands), formatResult(result))
			return nil
		},
	}

	// Everything after the operation name is an operand, so "-1" is a number
	// and not a shorthand flag.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newOperationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, op := range domain.Operations() {
				fmt.Fprintf(out, "%-12s %d operand(s)\n", op, op.Arity())
			}
		},
	}
}
