// ABOUTME: MCP prompts for common diary workflows.
// ABOUTME: Provides pre-configured prompts for AI agent interactions.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	// Register individual prompts - SDK will automatically handle listing
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "write-diary-entry",
		Description: "Write a diary entry for a date with a mood suggestion",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "date",
				Description: "Date for the entry (YYYY-MM-DD)",
				Required:    false,
			},
		},
	}, s.getWriteEntryPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "monthly-mood-review",
		Description: "Review mood patterns over a month and summarize them",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "month",
				Description: "Month to review (YYYY-MM)",
				Required:    false,
			},
		},
	}, s.getMoodReviewPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "suggest-mood",
		Description: "Suggest a mood label for an existing entry",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "entry_id",
				Description: "ID of the entry to classify",
				Required:    true,
			},
		},
	}, s.getSuggestMoodPrompt)
}

func (s *Server) getWriteEntryPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	date, ok := req.Params.Arguments["date"]
	if !ok || date == "" {
		date = "today"
	}

	template := fmt.Sprintf(`Help me write a diary entry for %s.

Ask me about my day, then draft an entry that covers:

- What happened and how it felt
- Anything I'm grateful for or worried about
- One thing I want to remember about this day

When the entry is ready, judge which single mood best fits it
(happy, sad, angry, anxious, or neutral) and use the add_entry tool
to save it with that mood.`, date)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) getMoodReviewPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	month, ok := req.Params.Arguments["month"]
	if !ok || month == "" {
		month = "this month"
	}

	template := fmt.Sprintf(`Review my moods for %s.

1. Use the mood_stats tool to get the per-mood counts
2. Use the list_entries tool to read the entries themselves
3. Summarize the overall emotional tone of the month
4. Point out streaks or shifts (e.g. several anxious days in a row)
5. Suggest one small, concrete thing to try next month

Keep the summary kind and non-judgmental.`, month)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) getSuggestMoodPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	entryID, ok := req.Params.Arguments["entry_id"]
	if !ok || entryID == "" {
		return nil, fmt.Errorf("entry_id argument is required")
	}

	template := fmt.Sprintf(`Please suggest a mood for the entry with ID: %s

1. Use the get_entry tool to retrieve the entry content
2. Read it and pick the single mood that best fits:
   happy, sad, angry, anxious, or neutral
3. Briefly explain your choice in one sentence
4. Use the update_entry tool to set that mood on the entry`, entryID)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
