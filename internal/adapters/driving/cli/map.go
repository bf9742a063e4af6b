package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Browse maps",
}

var mapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all maps",
	Args:  cobra.NoArgs,
	RunE:  runMapList,
}

func init() {
	mapCmd.AddCommand(mapListCmd)
	rootCmd.AddCommand(mapCmd)
}

func runMapList(cmd *cobra.Command, _ []string) error {
	if mapService == nil {
		return fmt.Errorf("map %w", errNotConfigured)
	}

	maps, err := mapService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing maps: %w", err)
	}

	return render(cmd, maps, func(w io.Writer) {
		if len(maps) == 0 {
			fmt.Fprintln(w, "No maps found.")
			return
		}
		fmt.Fprintln(w, "Maps:")
		for _, m := range maps {
			fmt.Fprintf(w, "  %3d  %-10s %s\n", m.ID, m.Name, m.ImagePath)
		}
	})
}
