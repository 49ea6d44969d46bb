// ABOUTME: MCP resources for exposing diary entries as readable resources.
// ABOUTME: Allows AI agents to access entry content via URI scheme.

package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// We register a resource template for dynamic entry access
	// The SDK will automatically handle listing based on the template
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: "moodlog://entry/{id}",
			Name:        "Entry",
			Description: "Access individual diary entries by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	// Parse URI: moodlog://entry/{id}
	var entryIDStr string
	_, err := fmt.Sscanf(req.Params.URI, "moodlog://entry/%s", &entryIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	var entry *models.Entry
	if entryID, parseErr := uuid.Parse(entryIDStr); parseErr == nil {
		entry, err = db.GetEntryByID(s.db, entryID)
	} else {
		entry, err = db.GetEntryByPrefix(s.db, entryIDStr)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	info := entry.Mood.Info()
	content := fmt.Sprintf("# %s\n\n**Mood:** %s %s\n\n%s", entry.Date, info.Emoji, info.Label, entry.Content)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     content,
			},
		},
	}, nil
}
