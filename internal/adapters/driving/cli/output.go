package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// idResult is printed for writes that produce a shortcut ID.
type idResult struct {
	ID int64 `json:"id"`
}

// statusResult is printed for writes with nothing else to report.
type statusResult struct {
	Status string `json:"status"`
}

// eventResult is printed by the log command.
type eventResult struct {
	EventID string `json:"eventId"`
}

var statusOK = statusResult{Status: "ok"}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// render prints v as JSON when --json is set or stdout is not a terminal,
// otherwise it calls human.
func render(cmd *cobra.Command, v any, human func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if jsonOutput || !isTerminal(out) {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human(out)
	return nil
}

// parseID parses a positive database ID from a command argument.
func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, raw)
	}
	return id, nil
}
