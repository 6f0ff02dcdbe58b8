package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "feesim",
	Short: "SFSS fee referendum calculator and pledge form",
	Long: `feesim is the terminal version of the fee referendum landing page.

It shows what each student activity fee level ($1-$8 per semester) means for
services, clubs and events, and lets supporters pledge to vote YES.

Run without arguments to start the interactive view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive view owns the terminal; keep logs off it
		if !cmd.HasParent() || cmd.Name() == "tui" {
			return nil
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(pledgeCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
