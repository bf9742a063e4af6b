package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var assignID int64

var shortcutCmd = &cobra.Command{
	Use:   "shortcut",
	Short: "Manage shortcuts on a map",
	Long: `Create, change and remove key-binding shortcuts on a map.

A key combination is held by at most one shortcut per map when set
through "assign", which takes it away from any other shortcut first.`,
}

var shortcutListCmd = &cobra.Command{
	Use:   "list [map-id]",
	Short: "List the shortcuts on a map",
	Args:  cobra.ExactArgs(1),
	RunE:  runShortcutList,
}

var shortcutSaveCmd = &cobra.Command{
	Use:   "save [map-id] [description] [key]",
	Short: "Create a shortcut",
	Long:  `Create a shortcut on a map. The key may be "" to leave it unbound.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runShortcutSave,
}

var shortcutEditCmd = &cobra.Command{
	Use:   "edit [map-id] [shortcut-id] [description] [key]",
	Short: "Change a shortcut's description and key",
	Args:  cobra.ExactArgs(4),
	RunE:  runShortcutEdit,
}

var shortcutUnbindCmd = &cobra.Command{
	Use:   "unbind [map-id] [key]",
	Short: "Free a key combination on a map",
	Args:  cobra.ExactArgs(2),
	RunE:  runShortcutUnbind,
}

var shortcutAssignCmd = &cobra.Command{
	Use:   "assign [map-id] [description] [key]",
	Short: "Bind a key, taking it from any other shortcut on the map",
	Long: `Bind a key to a shortcut on a map. Any other shortcut on the map that
holds the key is unbound first, in the same transaction.

Without --id a new shortcut is created; with --id the existing one is
rebound and renamed.`,
	Args: cobra.ExactArgs(3),
	RunE: runShortcutAssign,
}

var shortcutDeleteCmd = &cobra.Command{
	Use:   "delete [map-id] [shortcut-id]",
	Short: "Delete a shortcut and its media",
	Args:  cobra.ExactArgs(2),
	RunE:  runShortcutDelete,
}

func init() {
	shortcutAssignCmd.Flags().Int64Var(&assignID, "id", 0, "existing shortcut to rebind (default: create)")

	shortcutCmd.AddCommand(shortcutListCmd)
	shortcutCmd.AddCommand(shortcutSaveCmd)
	shortcutCmd.AddCommand(shortcutEditCmd)
	shortcutCmd.AddCommand(shortcutUnbindCmd)
	shortcutCmd.AddCommand(shortcutAssignCmd)
	shortcutCmd.AddCommand(shortcutDeleteCmd)
	rootCmd.AddCommand(shortcutCmd)
}

func runShortcutList(cmd *cobra.Command, args []string) error {
	if shortcutService == nil {
		return fmt.Errorf("shortcut %w", errNotConfigured)
	}
	mapID, err := parseID("map id", args[0])
	if err != nil {
		return err
	}

	shortcuts, err := shortcutService.List(cmd.Context(), mapID)
	if err != nil {
		return fmt.Errorf("listing shortcuts: %w", err)
	}

	return render(cmd, shortcuts, func(w io.Writer) {
		if len(shortcuts) == 0 {
			fmt.Fprintf(w, "No shortcuts on map %d.\n", mapID)
			return
		}
		fmt.Fprintf(w, "Shortcuts on map %d:\n", mapID)
		for _, sc := range shortcuts {
			key := sc.Shortcut
			if !sc.IsBound() {
				key = "(unbound)"
			}
			fmt.Fprintf(w, "  [%d] %-16s %s\n", sc.ID, key, sc.Description)
		}
	})
}

func runShortcutSave(cmd *cobra.Command, args []string) error {
	if shortcutService == nil {
		return fmt.Errorf("shortcut %w", errNotConfigured)
	}
	mapID, err := parseID("map id", args[0])
	if err != nil {
		return err
	}

	id, err := shortcutService.Save(cmd.Context(), mapID, args[1], args[2])
	if err != nil {
		return fmt.Errorf("saving shortcut: %w", err)
	}

	return render(cmd, idResult{ID: id}, func(w io.Writer) {
		fmt.Fprintf(w, "Saved shortcut %d\n", id)
	})
}

func runShortcutEdit(cmd *cobra.Command, args []string) error {
	if shortcutService == nil {
		return fmt.Errorf("shortcut %w", errNotConfigured)
	}
	mapID, err := parseID("map id", args[0])
	if err != nil {
		return err
	}
	shortcutID, err := parseID("shortcut id", args[1])
	if err != nil {
		return err
	}

	if err := shortcutService.Edit(cmd.Context(), mapID, shortcutID, args[2], args[3]); err != nil {
		return fmt.Errorf("editing shortcut: %w", err)
	}

	return render(cmd, statusOK, func(w io.Writer) {
		fmt.Fprintf(w, "Updated shortcut %d\n", shortcutID)
	})
}

func runShortcutUnbind(cmd *cobra.Command, args []string) error {
	if shortcutService == nil {
		return fmt.Errorf("shortcut %w", errNotConfigured)
	}
	mapID, err := parseID("map id", args[0])
	if err != nil {
		return err
	}

	if err := shortcutService.RemoveReference(cmd.Context(), mapID, args[1]); err != nil {
		return fmt.Errorf("unbinding shortcut: %w", err)
	}

	return render(cmd, statusOK, func(w io.Writer) {
		fmt.Fprintf(w, "Unbound %q on map %d\n", args[1], mapID)
	})
}

func runShortcutAssign(cmd *cobra.Command, args []string) error {
	if shortcutService == nil {
		return fmt.Errorf("shortcut %w", errNotConfigured)
	}
	mapID, err := parseID("map id", args[0])
	if err != nil {
		return err
	}

	var target *int64
	if assignID != 0 {
		id := assignID
		target = &id
	}

	id, err := shortcutService.Assign(cmd.Context(), mapID, target, args[1], args[2])
	if err != nil {
		return fmt.Errorf("assigning shortcut: %w", err)
	}

	return render(cmd, idResult{ID: id}, func(w io.Writer) {
		fmt.Fprintf(w, "Assigned %q to shortcut %d\n", args[2], id)
	})
}

func runShortcutDelete(cmd *cobra.Command, args []string) error {
	if shortcutService == nil {
		return fmt.Errorf("shortcut %w", errNotConfigured)
	}
	mapID, err := parseID("map id", args[0])
	if err != nil {
		return err
	}
	shortcutID, err := parseID("shortcut id", args[1])
	if err != nil {
		return err
	}

	if err := shortcutService.Delete(cmd.Context(), mapID, shortcutID); err != nil {
		return fmt.Errorf("deleting shortcut: %w", err)
	}

	return render(cmd, statusOK, func(w io.Writer) {
		fmt.Fprintf(w, "Deleted shortcut %d\n", shortcutID)
	})
}
