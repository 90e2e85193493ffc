package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/notesync/internal/core/domain"
)

// NoInput is the input schema for tools that take no arguments.
type NoInput struct{}

// OutcomeOutput is one destination's result.
type OutcomeOutput struct {
	Target  string `json:"target"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SyncOutput is the output schema for the sync_now tool.
type SyncOutput struct {
	Success bool            `json:"success"`
	Results []OutcomeOutput `json:"results"`
	Message string          `json:"message,omitempty"`
}

// FoldersOutput is the output schema for the list_collections tool.
type FoldersOutput struct {
	Folders []string `json:"folders"`
	Count   int      `json:"count"`
}

// AvailabilityOutput is the output schema for the check_availability tool.
type AvailabilityOutput struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sync_now",
		Description: "Export the note to every enabled sync destination and report each result",
	}, s.handleSyncNow)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "test_sync",
		Description: "Run the first enabled sync destination and report whether it succeeded",
	}, s.handleTestSync)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_collections",
		Description: "List the folders in the default Apple Notes account",
	}, s.handleListCollections)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_availability",
		Description: "Check that Apple Notes can be automated from this process",
	}, s.handleCheckAvailability)
}

// handleSyncNow exports the note. Destination failures are reported in the
// output; only a run that cannot start is a tool error.
func (s *Server) handleSyncNow(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, SyncOutput, error) {
	outcomes, err := s.ports.Sync.SyncOutcomes(ctx)
	if err != nil {
		return nil, SyncOutput{}, err
	}

	output := SyncOutput{
		Success: true,
		Results: make([]OutcomeOutput, len(outcomes)),
	}
	if len(outcomes) == 0 {
		output.Message = domain.MessageNoTargetsEnabled
	}

	for i, o := range outcomes {
		result := OutcomeOutput{
			Target:  o.Target.Label(),
			Success: o.Succeeded(),
			Message: domain.MessageSyncSucceeded,
		}
		if o.Err != nil {
			result.Message = o.Err.Error()
			output.Success = false
		}
		output.Results[i] = result
	}

	return nil, output, nil
}

// handleTestSync runs the first enabled destination.
func (s *Server) handleTestSync(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, domain.SyncTestResult, error) {
	result, err := s.ports.Sync.TestSync(ctx)
	if err != nil {
		return nil, domain.SyncTestResult{}, err
	}
	return nil, result, nil
}

// handleListCollections lists Apple Notes folders.
func (s *Server) handleListCollections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, FoldersOutput, error) {
	folders, err := s.ports.Sync.ListCollections(ctx)
	if err != nil {
		return nil, FoldersOutput{}, err
	}
	if folders == nil {
		folders = []string{}
	}
	return nil, FoldersOutput{Folders: folders, Count: len(folders)}, nil
}

// handleCheckAvailability probes Apple Notes. A failed probe is a normal
// answer, not a tool error.
func (s *Server) handleCheckAvailability(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, AvailabilityOutput, error) {
	if err := s.ports.Sync.CheckAvailability(ctx); err != nil {
		return nil, AvailabilityOutput{Message: err.Error()}, nil
	}
	return nil, AvailabilityOutput{Available: true, Message: "Apple Notes is available"}, nil
}
