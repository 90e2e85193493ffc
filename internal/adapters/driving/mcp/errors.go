// Package mcp provides an MCP (Model Context Protocol) server adapter for notesync.
// It lets AI assistants trigger a sync, probe Apple Notes and read the note.
package mcp

import "errors"

// ErrMissingSyncService is returned when the note sync service is not provided.
var ErrMissingSyncService = errors.New("mcp: note sync service is required")
