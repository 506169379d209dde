package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for similar error patterns",
	Long: `Searches the local knowledge graph for patterns similar to the query
and prints the matches. The limit bounds how many results the engine returns.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient(newLogger())
	if err != nil {
		return err
	}

	patterns, err := client.SearchPatterns(cmd.Context(), args[0], searchLimit)
	if err != nil {
		return err
	}

	out, err := FormatResponse(patterns, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
