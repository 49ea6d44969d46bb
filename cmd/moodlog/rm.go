// ABOUTME: Remove command for deleting diary entries.
// ABOUTME: Includes confirmation prompt before deletion.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Remove an entry",
	Long:  `Delete a diary entry.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := args[0]
		force, _ := cmd.Flags().GetBool("force")

		entry, err := db.GetEntryByPrefix(dbConn, prefix)
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}

		if !force {
			fmt.Printf("Delete entry for %s (%s)? [y/N] ", entry.Date, entry.ID.String()[:6])
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := db.DeleteEntry(dbConn, entry.ID); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Deleted entry %s", entry.ID.String()[:6])))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
