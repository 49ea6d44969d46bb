// ABOUTME: Root command and shared setup for the moodlog CLI.
// ABOUTME: Opens the entry database and constructs the mood classifier gateway.

package main

import (
	"database/sql"
	"fmt"

	"github.com/harper/moodlog/internal/ai"
	"github.com/harper/moodlog/internal/config"
	"github.com/harper/moodlog/internal/db"
	"github.com/spf13/cobra"
)

var (
	dbConn  *sql.DB
	cfg     *config.Config
	gateway *ai.Gateway
)

var rootCmd = &cobra.Command{
	Use:   "moodlog",
	Short: "A mood diary with local AI mood suggestions",
	Long: `moodlog is a local-first mood diary. Write one entry per day, let a
local language model suggest a mood for it, and review your moods over
time with calendars and monthly stats.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dbConn, err = db.Open(db.DefaultPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		gateway = ai.NewGateway(ai.NewHTTPEngine(cfg.Engine, cfg.Model))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		gateway.Dispose()
		if dbConn != nil {
			_ = dbConn.Close() // Best-effort cleanup
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}
