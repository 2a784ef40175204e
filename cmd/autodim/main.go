package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/larsvik/autodim/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "autodim",
	Short:   "Automatic beam dimensioning for orthographic views",
	Long:    "Autodim selects dimension lines and reference points on beam solids and hands them to an annotation backend.",
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline decisions and ambiguity flags")
}

// newLogger builds the CLI logger; ambiguity warnings always show,
// stage-by-stage decisions only with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
