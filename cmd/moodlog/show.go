// ABOUTME: Show command for displaying a single diary entry.
// ABOUTME: Looks up by ID prefix or date and renders markdown with glamour.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/models"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id-prefix]",
	Short: "Show an entry",
	Long:  `Display an entry's full content with rendered markdown. Pass an ID prefix, or use --date to look up by calendar date.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")

		var entry *models.Entry
		var err error
		switch {
		case dateFlag != "":
			if err := models.ValidateDate(dateFlag); err != nil {
				return fmt.Errorf("invalid date %q: use YYYY-MM-DD", dateFlag)
			}
			entry, err = db.GetEntryByDate(dbConn, dateFlag)
			if errors.Is(err, db.ErrEntryNotFound) {
				fmt.Printf("No entry for %s.\n", dateFlag)
				return nil
			}
		case len(args) == 1:
			entry, err = db.GetEntryByPrefix(dbConn, args[0])
		default:
			return fmt.Errorf("pass an ID prefix or --date")
		}
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}

		fmt.Print(ui.FormatEntryHeader(entry))

		content, _ := ui.FormatEntryContent(entry.Content)
		fmt.Print(content)
		return nil
	},
}

func init() {
	showCmd.Flags().StringP("date", "d", "", "look up by date (YYYY-MM-DD)")
	rootCmd.AddCommand(showCmd)
}
