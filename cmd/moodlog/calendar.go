// ABOUTME: Calendar command for a month-at-a-glance mood view.
// ABOUTME: Renders a weekday grid with mood emoji on journaled days.

package main

import (
	"fmt"
	"time"

	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/models"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a mood calendar",
	Long:  `Display a calendar for a month with the mood of each journaled day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")

		year, month, err := parseMonthFlag(monthFlag)
		if err != nil {
			return err
		}

		entries, err := db.GetEntriesByMonth(dbConn, year, month)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		// Entries come back ordered by date then creation time, so the
		// first entry seen for a date is the one the calendar shows.
		byDate := make(map[string]*models.Entry, len(entries))
		for _, entry := range entries {
			if _, ok := byDate[entry.Date]; !ok {
				byDate[entry.Date] = entry
			}
		}

		fmt.Print(ui.FormatCalendar(year, month, byDate))
		return nil
	},
}

// parseMonthFlag resolves a YYYY-MM flag value, defaulting to the current month.
func parseMonthFlag(value string) (int, time.Month, error) {
	if value == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: use YYYY-MM", value)
	}
	return t.Year(), t.Month(), nil
}

func init() {
	calendarCmd.Flags().StringP("month", "m", "", "month to show (YYYY-MM), defaults to current")
	rootCmd.AddCommand(calendarCmd)
}
