// ABOUTME: Edit command for modifying existing diary entries.
// ABOUTME: Opens content in $EDITOR with opt-in mood re-analysis.

package main

import (
	"fmt"

	"github.com/harper/moodlog/internal/ai"
	"github.com/harper/moodlog/internal/flow"
	"github.com/harper/moodlog/internal/models"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id-prefix>",
	Short: "Edit an entry",
	Long: `Open an entry in $EDITOR for editing. The mood is kept unless you pass
--mood, or --reanalyze to let the model suggest a new one from the
edited text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moodFlag, _ := cmd.Flags().GetString("mood")
		contentFlag, _ := cmd.Flags().GetString("content")
		reanalyzeFlag, _ := cmd.Flags().GetBool("reanalyze")

		ctx := cmd.Context()

		session, err := flow.LoadEditSession(dbConn, gateway, args[0])
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}

		newContent := contentFlag
		if newContent == "" {
			newContent, err = openEditor(session.Content())
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		if newContent == session.Content() && moodFlag == "" && !reanalyzeFlag {
			fmt.Println("No changes made.")
			return nil
		}
		session.SetContent(newContent)

		if moodFlag != "" {
			mood, err := models.ParseMood(moodFlag)
			if err != nil {
				return fmt.Errorf("invalid mood %q: must be one of %v", moodFlag, models.AllMoods)
			}
			if err := session.SetMood(mood); err != nil {
				return err
			}
		}

		if reanalyzeFlag {
			if moodFlag != "" {
				return fmt.Errorf("--mood and --reanalyze are mutually exclusive")
			}
			session.SetReanalyze(true)
			if cfg.AutoLoad && gateway.Status() == ai.StatusIdle && gateway.Supported(ctx) {
				drain(gateway.Initialize(ctx))
				waitForModel(ctx)
			}
			if gateway.Status() != ai.StatusReady {
				fmt.Println(ui.Warn("model not ready, keeping the current mood"))
			}
		}

		mood, err := session.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		info := mood.Info()
		fmt.Println(ui.Success(fmt.Sprintf("Updated entry %s %s %s",
			session.Entry().ID.String()[:6], info.Emoji, info.Label)))
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("content", "c", "", "new content (inline, skips $EDITOR)")
	editCmd.Flags().StringP("mood", "m", "", "set the mood directly")
	editCmd.Flags().Bool("reanalyze", false, "let the model suggest a new mood from the edited text")
	rootCmd.AddCommand(editCmd)
}
