// ABOUTME: MCP tools for diary entry CRUD and mood analytics.
// ABOUTME: Maps CLI functionality to MCP tool interface.

package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_entry
	s.server.AddTool(&mcp.Tool{
		Name:        "add_entry",
		Description: "Create a new diary entry for a date with content and a mood",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"date": {"type": "string", "description": "Entry date (YYYY-MM-DD), defaults to today"},
				"content": {"type": "string", "description": "Entry content (markdown)"},
				"mood": {"type": "string", "description": "Mood: happy, sad, angry, anxious, or neutral", "default": "neutral"}
			},
			"required": ["content"]
		}`),
	}, s.handleAddEntry)

	// list_entries
	s.server.AddTool(&mcp.Tool{
		Name:        "list_entries",
		Description: "List diary entries, newest first",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "integer", "description": "Max results", "default": 20}
			}
		}`),
	}, s.handleListEntries)

	// get_entry
	s.server.AddTool(&mcp.Tool{
		Name:        "get_entry",
		Description: "Get a diary entry by ID prefix",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Entry ID or prefix (6+ chars)"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetEntry)

	// get_entry_by_date
	s.server.AddTool(&mcp.Tool{
		Name:        "get_entry_by_date",
		Description: "Get the diary entry for a calendar date",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"date": {"type": "string", "description": "Entry date (YYYY-MM-DD)"}
			},
			"required": ["date"]
		}`),
	}, s.handleGetEntryByDate)

	// update_entry
	s.server.AddTool(&mcp.Tool{
		Name:        "update_entry",
		Description: "Update a diary entry's content or mood",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Entry ID or prefix"},
				"content": {"type": "string", "description": "New content"},
				"mood": {"type": "string", "description": "New mood: happy, sad, angry, anxious, or neutral"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateEntry)

	// delete_entry
	s.server.AddTool(&mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a diary entry",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Entry ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteEntry)

	// search_entries
	s.server.AddTool(&mcp.Tool{
		Name:        "search_entries",
		Description: "Search diary entries by keyword (case-insensitive)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"keyword": {"type": "string", "description": "Search keyword"}
			},
			"required": ["keyword"]
		}`),
	}, s.handleSearchEntries)

	// mood_stats
	s.server.AddTool(&mcp.Tool{
		Name:        "mood_stats",
		Description: "Get per-mood entry counts for a month",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"year": {"type": "integer", "description": "Year, defaults to current"},
				"month": {"type": "integer", "description": "Month 1-12, defaults to current"}
			}
		}`),
	}, s.handleMoodStats)
}

// Tool handlers.
func (s *Server) handleAddEntry(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Date    string `json:"date"`
		Content string `json:"content"`
		Mood    string `json:"mood"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Content) == "" {
		return toolError("entry content cannot be empty"), nil
	}

	date := params.Date
	if date == "" {
		date = time.Now().Format(models.DateFormat)
	}
	if err := models.ValidateDate(date); err != nil {
		return toolError(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", params.Date)), nil
	}

	mood := models.DefaultMood
	if params.Mood != "" {
		var err error
		mood, err = models.ParseMood(params.Mood)
		if err != nil {
			return toolError(fmt.Sprintf("invalid mood %q: must be one of %v", params.Mood, models.AllMoods)), nil
		}
	}

	entry := models.NewEntry(date, models.TruncateContent(params.Content), mood)
	if err := db.CreateEntry(s.db, entry); err != nil {
		return toolError(fmt.Sprintf("failed to create entry: %v", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Created entry %s for %s", entry.ID.String(), entry.Date)},
		},
	}, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Limit int `json:"limit"`
	}
	params.Limit = 20 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entries, err := db.ListEntries(s.db)
	if err != nil {
		return toolError(fmt.Sprintf("failed to list entries: %v", err)), nil
	}
	if params.Limit > 0 && len(entries) > params.Limit {
		entries = entries[:params.Limit]
	}

	data, _ := json.MarshalIndent(entries, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func (s *Server) handleGetEntry(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entry, err := findEntry(s.db, params.ID)
	if err != nil {
		return toolError(fmt.Sprintf("failed to get entry: %v", err)), nil
	}

	data, _ := json.MarshalIndent(entry, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func (s *Server) handleGetEntryByDate(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if err := models.ValidateDate(params.Date); err != nil {
		return toolError(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", params.Date)), nil
	}

	entry, err := db.GetEntryByDate(s.db, params.Date)
	if errors.Is(err, db.ErrEntryNotFound) {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("No entry for %s", params.Date)},
			},
		}, nil
	}
	if err != nil {
		return toolError(fmt.Sprintf("failed to get entry: %v", err)), nil
	}

	data, _ := json.MarshalIndent(entry, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func (s *Server) handleUpdateEntry(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID      string  `json:"id"`
		Content *string `json:"content"`
		Mood    *string `json:"mood"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entry, err := findEntry(s.db, params.ID)
	if err != nil {
		return toolError(fmt.Sprintf("failed to find entry: %v", err)), nil
	}

	update := db.UpdateEntryParams{}
	if params.Content != nil {
		if strings.TrimSpace(*params.Content) == "" {
			return toolError("entry content cannot be empty"), nil
		}
		truncated := models.TruncateContent(*params.Content)
		update.Content = &truncated
	}
	if params.Mood != nil {
		mood, err := models.ParseMood(*params.Mood)
		if err != nil {
			return toolError(fmt.Sprintf("invalid mood %q: must be one of %v", *params.Mood, models.AllMoods)), nil
		}
		update.Mood = &mood
	}

	if err := db.UpdateEntry(s.db, entry.ID, update); err != nil {
		return toolError(fmt.Sprintf("failed to update entry: %v", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Updated entry %s", entry.ID.String())},
		},
	}, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entry, err := findEntry(s.db, params.ID)
	if err != nil {
		return toolError(fmt.Sprintf("failed to find entry: %v", err)), nil
	}

	if err := db.DeleteEntry(s.db, entry.ID); err != nil {
		return toolError(fmt.Sprintf("failed to delete entry: %v", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Deleted entry %s", entry.ID.String())},
		},
	}, nil
}

func (s *Server) handleSearchEntries(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Keyword string `json:"keyword"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entries, err := db.SearchEntries(s.db, params.Keyword)
	if err != nil {
		return toolError(fmt.Sprintf("failed to search entries: %v", err)), nil
	}

	data, _ := json.MarshalIndent(entries, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

func (s *Server) handleMoodStats(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	now := time.Now()
	if params.Year == 0 {
		params.Year = now.Year()
	}
	if params.Month == 0 {
		params.Month = int(now.Month())
	}
	if params.Month < 1 || params.Month > 12 {
		return toolError(fmt.Sprintf("invalid month %d: must be 1-12", params.Month)), nil
	}

	stats, err := db.GetMoodStats(s.db, params.Year, time.Month(params.Month))
	if err != nil {
		return toolError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	data, _ := json.MarshalIndent(stats, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil
}

// findEntry resolves an ID argument as a full UUID or a prefix.
func findEntry(dbConn *sql.DB, id string) (*models.Entry, error) {
	if parsed, err := uuid.Parse(id); err == nil {
		return db.GetEntryByID(dbConn, parsed)
	}
	return db.GetEntryByPrefix(dbConn, id)
}

func toolError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
