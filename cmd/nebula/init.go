package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nebula/internal/config"
	"nebula/internal/paths"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Nebula configuration",
	Long:  "Creates a .nebula/ directory with default configuration in the current directory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"Force reinitialization (overwrites existing configuration)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configPath := paths.ConfigFile(cwd)
	if _, statErr := os.Stat(configPath); statErr == nil && !initForce {
		// Idempotent: already initialized is success.
		fmt.Println("Nebula already initialized.")
		fmt.Printf("Configuration at: %s\n", configPath)
		fmt.Println("\nRun 'nebula init --force' to overwrite.")
		return nil
	}

	if err := os.MkdirAll(paths.ConfigDir(cwd), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", paths.ConfigDir(cwd), err)
	}

	cfg := config.DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Printf("Initialized Nebula configuration at %s\n", configPath)
	return nil
}
