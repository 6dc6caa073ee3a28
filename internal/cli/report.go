package cli

import (
	"errors"
	"fmt"
	"io"

	"ozzus/scicalc/internal/calculator"
	"ozzus/scicalc/internal/domain"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	resultColor = color.New(color.FgGreen)
)

// reportError logs and prints a calculator failure the way the user sees it:
// value-domain problems and operand kind problems are labelled differently.
func reportError(out io.Writer, events EventLogger, err error) {
	var inErr *inputError

	label := "Error"
	switch {
	case calculator.IsDomainError(err), errors.As(err, &inErr):
		label = "Value error"
	case calculator.IsInvalidOperand(err):
		label = "Type error"
	}

	message := err.Error()
	var calcErr *calculator.Error
	if errors.As(err, &calcErr) {
		message = calcErr.Message
	}

	events.Log(domain.SeverityError, "%s: %s", label, message)
	errorColor.Fprintf(out, "%s: %s\n", label, message)
}

func printResult(out io.Writer, format string, args ...any) {
	resultColor.Fprintf(out, format, args...)
	fmt.Fprintln(out)
}
