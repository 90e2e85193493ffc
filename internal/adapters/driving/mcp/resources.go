package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	htmlnorm "github.com/custodia-labs/notesync/internal/normalisers/html"
)

const (
	// uriScheme is the custom URI scheme for notesync resources.
	uriScheme = "notesync://"

	noteURI     = uriScheme + "note"
	noteHTMLURI = uriScheme + "note.html"
	settingsURI = uriScheme + "settings"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         noteURI,
		Name:        "note",
		Description: "The note as plain text",
		MIMEType:    "text/plain",
	}, s.handleNoteResource)

	s.server.AddResource(&mcp.Resource{
		URI:         noteHTMLURI,
		Name:        "note-html",
		Description: "The note as stored, in HTML",
		MIMEType:    "text/html",
	}, s.handleNoteHTMLResource)

	if s.ports.Settings != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         settingsURI,
			Name:        "settings",
			Description: "The saved sync configuration",
			MIMEType:    "application/json",
		}, s.handleSettingsResource)
	}
}

// handleNoteResource returns the note with markup removed.
func (s *Server) handleNoteResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	content, err := s.ports.Sync.Note(ctx)
	if err != nil {
		return nil, err
	}
	return textResult(req.Params.URI, "text/plain", htmlnorm.PlainText(content)), nil
}

// handleNoteHTMLResource returns the note exactly as stored.
func (s *Server) handleNoteHTMLResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	content, err := s.ports.Sync.Note(ctx)
	if err != nil {
		return nil, err
	}
	return textResult(req.Params.URI, "text/html", content), nil
}

// handleSettingsResource returns the saved configuration as JSON.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cfg, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return textResult(req.Params.URI, "application/json", string(data)), nil
}

func textResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}
