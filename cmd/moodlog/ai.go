// ABOUTME: AI command group for managing the mood model.
// ABOUTME: Reports classifier status and loads the model with progress output.

package main

import (
	"fmt"

	"github.com/harper/moodlog/internal/ai"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Manage the mood model",
	Long:  `Inspect and control the local model that suggests moods for entries.`,
}

var aiStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show classifier status",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Engine: %s\n", cfg.Engine)
		fmt.Printf("Model:  %s\n", cfg.Model)

		if !gateway.Supported(cmd.Context()) {
			fmt.Println(ui.Warn("engine unreachable: mood suggestions are unavailable"))
			fmt.Println("Entries can still be saved with a manually picked mood.")
			return nil
		}

		fmt.Printf("Status: %s\n", gateway.Status())
		if err := gateway.Err(); err != nil {
			fmt.Println(ui.Error(fmt.Sprintf("last error: %v", err)))
			fmt.Println("Run `moodlog ai load` to retry.")
		}
		return nil
	},
}

var aiLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the mood model",
	Long:  `Pull the mood model into the engine, streaming progress.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for ev := range gateway.Initialize(cmd.Context()) {
			fmt.Println(ui.FormatLoadProgress(ev.Percent, ev.Text))
		}

		switch gateway.Status() {
		case ai.StatusReady:
			fmt.Println(ui.Success("model ready"))
			return nil
		case ai.StatusError:
			return fmt.Errorf("model failed to load: %w", gateway.Err())
		default:
			return fmt.Errorf("model is not ready (status %s)", gateway.Status())
		}
	},
}

func init() {
	aiCmd.AddCommand(aiStatusCmd)
	aiCmd.AddCommand(aiLoadCmd)
	rootCmd.AddCommand(aiCmd)
}
