// ABOUTME: Stats command for monthly mood distribution.
// ABOUTME: Prints per-mood counts as a table with bars.

package main

import (
	"fmt"

	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show monthly mood stats",
	Long:  `Display how often each mood was logged in a month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")

		year, month, err := parseMonthFlag(monthFlag)
		if err != nil {
			return err
		}

		stats, err := db.GetMoodStats(dbConn, year, month)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Print(ui.FormatMoodStats(year, month, stats))
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("month", "m", "", "month to show (YYYY-MM), defaults to current")
	rootCmd.AddCommand(statsCmd)
}
