package cmd

import (
	"fmt"
	"os"

	"pogodata/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pogodata",
	Short: "Pokemon GO game-data catalog service",
	Long: `Pogodata ingests the game's protocol text, game-master dump and locale
table and serves a cross-referenced catalog of Pokemon, types, moves, items
and grunts over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format for CLI error reporting; debug level gives readable
		// ISO8601 timestamps instead of epochs.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
