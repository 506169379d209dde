package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var solutionEffectiveness string

var solutionCmd = &cobra.Command{
	Use:   "solution <pattern-id> <text>",
	Short: "Attach a solution to a pattern",
	Long: `Attaches a solution to an existing error pattern and prints the new
solution identifier.`,
	Args: cobra.ExactArgs(2),
	RunE: runSolution,
}

func init() {
	solutionCmd.Flags().StringVar(&solutionEffectiveness, "effectiveness", "medium",
		"How well the solution worked: low, medium, or high")
	rootCmd.AddCommand(solutionCmd)
}

func runSolution(cmd *cobra.Command, args []string) error {
	client, err := newClient(newLogger())
	if err != nil {
		return err
	}

	id, err := client.AddSolution(cmd.Context(), args[0], args[1], solutionEffectiveness)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
