package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nebula/internal/bridge"
	"nebula/internal/paths"
	"nebula/internal/slogutil"
	"nebula/internal/version"
)

var (
	dbFlag       string
	formatFlag   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "nebula",
	Short: "Nebula - local knowledge-graph bridge",
	Long: `Nebula records and queries error-pattern knowledge through the local
knowledge-graph engine. It captures errors, searches for similar patterns,
attaches solutions, and reports summary statistics.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("nebula version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "",
		"Knowledge-graph database path (default: resolved from configuration)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "human",
		"Output format: json or human")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn",
		"Log level: debug, info, warn, or error")
}

// newLogger builds the CLI's stderr logger from the --log-level flag.
func newLogger() *slog.Logger {
	return slogutil.NewLogger(os.Stderr, slogutil.LevelFromString(logLevelFlag))
}

// newClient constructs a bridge client rooted at the discovered project.
func newClient(logger *slog.Logger, opts ...bridge.Option) (*bridge.Client, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	all := append([]bridge.Option{
		bridge.WithProjectRoot(paths.FindProjectRoot(cwd)),
		bridge.WithLogger(logger),
	}, opts...)
	return bridge.New(dbFlag, all...)
}

// outputFormat returns the validated --format value.
func outputFormat() OutputFormat {
	if formatFlag == string(FormatJSON) {
		return FormatJSON
	}
	return FormatHuman
}
