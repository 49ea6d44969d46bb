// ABOUTME: Search command for finding entries by keyword.
// ABOUTME: Case-insensitive match against entry content.

package main

import (
	"fmt"

	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search entries",
	Long:  `Search diary entries for a keyword, case-insensitively.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := db.SearchEntries(dbConn, args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		for _, entry := range entries {
			fmt.Print(ui.FormatEntryListItem(entry))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
