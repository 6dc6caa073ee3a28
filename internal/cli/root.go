package cli

import (
	"log/slog"

	"ozzus/scicalc/internal/calculator"
	"ozzus/scicalc/internal/config"
	"ozzus/scicalc/internal/domain"

	"github.com/spf13/cobra"
)

// EventLogger is the calculator's Logger; the driver logs its own error
// reports through it too.
type EventLogger interface {
	Log(severity domain.Severity, message string, args ...any)
}

// App carries the dependencies every command shares.
type App struct {
	Config     *config.Config
	Log        *slog.Logger
	Events     EventLogger
	Calculator *calculator.Calculator
}

func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scicalc",
		Short: "A scientific calculator",
		Long: `A scientific calculator for basic arithmetic, powers, roots,
logarithms and trigonometric functions. Every operation is logged to the
console and to a persistent log file.

Run without a command to start the guided interactive session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, app)
		},
	}

	rootCmd.AddCommand(
		newInteractiveCmd(app),
		newEvalCmd(app),
		newOperationsCmd(),
		newServeCmd(app),
	)

	return rootCmd
}
