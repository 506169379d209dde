package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show pattern statistics",
	Long:  "Prints aggregate statistics about captured patterns and solutions.",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	client, err := newClient(newLogger())
	if err != nil {
		return err
	}

	summary, err := client.GetSummary(cmd.Context())
	if err != nil {
		return err
	}

	out, err := FormatResponse(summary, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
