package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/doomsday-api/internal/config"
	"github.com/zapponejosh/doomsday-api/internal/logger"
)

var (
	logLevel string
	log      *slog.Logger
)

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "doomsday",
		Short:        "Find the weekday of any date from 1700 to 2100 with the Doomsday rule",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{Env: config.EnvDevelopment, LogLevel: logLevel, LogFormat: "text"}
			log = logger.New(cfg, os.Stderr)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(weekdayCmd(), anchorsCmd(), calendarCmd(), randomCmd(), guessCmd())
	return root
}
