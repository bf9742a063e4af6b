package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log [message...]",
	Short: "Record a message in the event log",
	Long:  `Write a timestamped message to stderr and print its event ID.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	if logService == nil {
		return fmt.Errorf("log %w", errNotConfigured)
	}

	id, err := logService.Log(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("logging message: %w", err)
	}

	return render(cmd, eventResult{EventID: id}, func(w io.Writer) {
		fmt.Fprintf(w, "Logged event %s\n", id)
	})
}
