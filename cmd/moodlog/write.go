// ABOUTME: Write command for creating today's diary entry.
// ABOUTME: Drives the draft, classify, confirm lifecycle with draft recovery.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/harper/moodlog/internal/ai"
	"github.com/harper/moodlog/internal/config"
	"github.com/harper/moodlog/internal/draft"
	"github.com/harper/moodlog/internal/flow"
	"github.com/harper/moodlog/internal/models"
	"github.com/harper/moodlog/internal/ui"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a diary entry",
	Long: `Write a diary entry for a date (today by default). Content can be
provided via --content, --file, or $EDITOR. The local model suggests a
mood which you can accept or override; with --mood the suggestion step
is skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")
		contentFlag, _ := cmd.Flags().GetString("content")
		fileFlag, _ := cmd.Flags().GetString("file")
		moodFlag, _ := cmd.Flags().GetString("mood")

		ctx := cmd.Context()

		var pickedMood models.Mood
		moodPicked := moodFlag != ""
		if moodPicked {
			var err error
			pickedMood, err = models.ParseMood(moodFlag)
			if err != nil {
				return fmt.Errorf("invalid mood %q: must be one of %v", moodFlag, models.AllMoods)
			}
		}

		date := dateFlag
		if date == "" {
			date = time.Now().Format(models.DateFormat)
		}

		// Draft store is best-effort: writing still works without it.
		var opts []flow.Option
		drafts, err := draft.Open(config.DraftDir())
		if err == nil {
			opts = append(opts, flow.WithDraftStore(drafts))
			defer func() {
				_ = drafts.Close()
			}()
		} else {
			fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("draft recovery unavailable: %v", err)))
		}

		session := flow.NewSession(dbConn, gateway, opts...)

		var content string
		switch {
		case contentFlag != "":
			content = contentFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			content = string(data)
		default:
			initial := ""
			if pending, ok := session.Resume(); ok {
				if confirmPrompt(fmt.Sprintf("Resume unsaved draft from %s? [y/N] ", pending.Date)) {
					initial = pending.Content
					if dateFlag == "" && pending.Date != "" {
						date = pending.Date
					}
				}
			}
			content, err = openEditor(initial)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("entry content cannot be empty")
		}

		// Warn before classification if the date is already taken.
		if existing, err := session.CheckDate(date); err == nil && existing != nil {
			fmt.Print(ui.FormatConflictCard(existing))
			return nil
		}

		// Kick off model loading early so the suggestion is usually ready
		// by the time the entry is written.
		if !moodPicked && cfg.AutoLoad && gateway.Status() == ai.StatusIdle {
			drain(gateway.Initialize(ctx))
		}

		if err := session.Submit(ctx, date, content); err != nil {
			if errors.Is(err, flow.ErrDateConflict) {
				fmt.Print(ui.FormatConflictCard(session.Existing()))
				return nil
			}
			return err
		}

		if err := resolveMood(ctx, session, moodPicked, pickedMood); err != nil {
			return err
		}
		if session.State() == flow.StateWrite {
			fmt.Println("Cancelled. Your draft is kept for next time.")
			return nil
		}

		entry, err := session.Confirm(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("failed to save entry: %v", err)))
			fmt.Fprintln(os.Stderr, ui.Warn("Your draft is kept. Run `moodlog write` to try again."))
			return err
		}

		info := entry.Mood.Info()
		fmt.Println(ui.Success(fmt.Sprintf("Saved entry %s for %s %s %s",
			entry.ID.String()[:6], entry.Date, info.Emoji, info.Label)))
		return nil
	},
}

// resolveMood walks the session from the post-submit state to confirm,
// prompting where the lifecycle needs a decision.
func resolveMood(ctx context.Context, session *flow.Session, moodPicked bool, picked models.Mood) error {
	if session.State() == flow.StateAwaitingDecision {
		if err := decideOnLoading(ctx, session, moodPicked); err != nil {
			return err
		}
	}

	switch session.State() {
	case flow.StateConfirm:
		if moodPicked {
			return session.SelectMood(picked)
		}
		info := session.Suggested().Info()
		fmt.Printf("Suggested mood: %s %s\n", info.Emoji, info.Label)
		if confirmPrompt("Accept? [Y/n] ") {
			return nil
		}
		return session.SelectMood(promptMood(session.Suggested()))
	case flow.StateManualMood:
		if moodPicked {
			return session.SelectMood(picked)
		}
		fmt.Println(ui.Warn("AI suggestions are unavailable. Pick a mood yourself."))
		return session.SelectMood(promptMood(models.DefaultMood))
	case flow.StateWrite:
		// Decision prompt was cancelled.
		return nil
	default:
		return fmt.Errorf("unexpected state %s", session.State())
	}
}

// decideOnLoading handles the case where the model is still loading when
// the entry is submitted: wait for it, save with a neutral mood, or cancel.
func decideOnLoading(ctx context.Context, session *flow.Session, moodPicked bool) error {
	if moodPicked {
		return session.SaveWithoutAI()
	}

	fmt.Println("The mood model is still loading.")
	fmt.Print("[w]ait for it, [s]ave without a suggestion, or [c]ancel? [w/s/c] ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		// No usable stdin. Saving with a neutral mood is the safe default.
		return session.SaveWithoutAI()
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "w", "wait":
		if err := session.Wait(); err != nil {
			return err
		}
		waitForModel(ctx)
		if err := session.Submit(ctx, session.Draft().Date, session.Draft().Content); err != nil {
			return err
		}
		if session.State() == flow.StateAwaitingDecision {
			// Load failed while we waited. Fall back to a manual pick.
			return session.SaveWithoutAI()
		}
		return nil
	case "c", "cancel":
		return session.CancelDecision()
	default:
		return session.SaveWithoutAI()
	}
}

// waitForModel blocks until the gateway leaves the loading state.
func waitForModel(ctx context.Context) {
	fmt.Println("Waiting for the model...")
	for gateway.Status() == ai.StatusLoading {
		select {
		case <-ctx.Done():
			return
		case <-time.After(200 * time.Millisecond):
		}
	}
	if gateway.Status() == ai.StatusError {
		fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("model failed to load: %v", gateway.Err())))
	}
}

// drain consumes a progress stream in the background.
func drain(events <-chan ai.ProgressEvent) {
	go func() {
		for range events {
		}
	}()
}

// promptMood asks the user to pick a mood by number or name.
// Falls back to def when input is unusable.
func promptMood(def models.Mood) models.Mood {
	fmt.Println("Pick a mood:")
	for i, m := range models.AllMoods {
		info := m.Info()
		fmt.Printf("  %d) %s %s\n", i+1, info.Emoji, info.Label)
	}
	fmt.Printf("Choice [1-%d or name]: ", len(models.AllMoods))

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return def
	}
	response = strings.TrimSpace(response)

	if n, err := strconv.Atoi(response); err == nil && n >= 1 && n <= len(models.AllMoods) {
		return models.AllMoods[n-1]
	}
	if m, err := models.ParseMood(response); err == nil {
		return m
	}

	fmt.Println(ui.Warn(fmt.Sprintf("unrecognized choice, using %s", def)))
	return def
}

// confirmPrompt asks a yes/no question. "Y/n" style prompts default to yes.
func confirmPrompt(question string) bool {
	fmt.Print(question)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return strings.Contains(question, "[Y/n]")
	}
	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return strings.Contains(question, "[Y/n]")
	}
	return response == "y" || response == "yes"
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "moodlog-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func init() {
	writeCmd.Flags().StringP("date", "d", "", "entry date (YYYY-MM-DD), defaults to today")
	writeCmd.Flags().StringP("content", "c", "", "entry content (inline)")
	writeCmd.Flags().StringP("file", "f", "", "read content from file")
	writeCmd.Flags().StringP("mood", "m", "", "set the mood directly and skip the AI suggestion")
	rootCmd.AddCommand(writeCmd)
}
