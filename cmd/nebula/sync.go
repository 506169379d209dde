package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nebula/internal/kgsync"
	"nebula/internal/nebulaerr"
)

var syncLimit int

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push local patterns to the central knowledge graph",
	Long: `Reads patterns from the local knowledge graph and submits them to the
central KG service configured via central_kg_url. Individual submission
failures are reported but do not abort the batch.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVar(&syncLimit, "limit", 100, "Maximum number of patterns to push")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	client, err := newClient(logger)
	if err != nil {
		return err
	}

	cfg := client.Config()
	if cfg.CentralKgUrl == "" {
		return nebulaerr.New(nebulaerr.SyncError,
			"no central_kg_url configured; set it in .nebula/config.json or NEBULA_CENTRAL_KG_URL", nil)
	}

	// An empty query asks the engine for its most recent patterns.
	patterns, err := client.SearchPatterns(cmd.Context(), "", syncLimit)
	if err != nil {
		return err
	}

	syncer := kgsync.New(cfg.CentralKgUrl, logger)
	summary := syncer.SyncPatterns(cmd.Context(), patterns)

	out, err := FormatResponse(summary, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
