package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"nebula/internal/bridge"
	"nebula/internal/worker"
)

var (
	captureCategory    string
	captureLanguage    string
	captureSeverity    string
	captureDescription string
	captureDetached    bool
)

var captureCmd = &cobra.Command{
	Use:   "capture <signature>",
	Short: "Record an error pattern",
	Long: `Records an error pattern in the local knowledge graph and prints the
new pattern identifier. With --detached the capture is queued in the
background and the command returns immediately without an identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVar(&captureCategory, "category", "Error", "Error category")
	captureCmd.Flags().StringVar(&captureLanguage, "language", "go", "Source language")
	captureCmd.Flags().StringVar(&captureSeverity, "severity", "medium", "Severity: low, medium, or high")
	captureCmd.Flags().StringVar(&captureDescription, "description", "", "Optional free-form description")
	captureCmd.Flags().BoolVar(&captureDetached, "detached", false, "Queue the capture without waiting for it")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	signature := args[0]

	if captureDetached {
		// The CLI process is short-lived, so give the detached capture its
		// own pool and drain it before exit. Library callers keep the real
		// fire-and-forget semantics on the process-wide pool.
		pool := worker.NewPool(logger, worker.DefaultConfig())
		pool.Start()

		client, err := newClient(logger, bridge.WithPool(pool))
		if err != nil {
			return err
		}

		client.CaptureErrorDetached(signature, captureCategory, captureLanguage, captureSeverity)
		fmt.Println("capture queued")
		return pool.Stop(30 * time.Second)
	}

	client, err := newClient(logger)
	if err != nil {
		return err
	}

	id, err := client.CaptureErrorWithDescription(cmd.Context(),
		signature, captureCategory, captureLanguage, captureSeverity, captureDescription)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
