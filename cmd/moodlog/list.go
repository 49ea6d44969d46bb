// ABOUTME: List command for displaying diary entries.
// ABOUTME: Shows newest entries first with mood badges and previews.

package main

import (
	"fmt"

	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries",
	Long:  `List diary entries, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limitFlag, _ := cmd.Flags().GetInt("limit")

		entries, err := db.ListEntries(dbConn)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No entries yet. Run `moodlog write` to start.")
			return nil
		}

		if limitFlag > 0 && len(entries) > limitFlag {
			entries = entries[:limitFlag]
		}

		for _, entry := range entries {
			fmt.Print(ui.FormatEntryListItem(entry))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntP("limit", "n", 20, "number of results")
	rootCmd.AddCommand(listCmd)
}
