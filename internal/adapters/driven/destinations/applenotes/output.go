package applenotes

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
)

// permissionErrorCode is errAEEventNotPermitted, returned when the user
// has not allowed automation of Notes.
const permissionErrorCode = "-1743"

// classifyFailure maps a failed script run to a sync error.
// Permission denial takes precedence over everything else in stderr.
func classifyFailure(result driven.ScriptResult) *domain.SyncError {
	stderr := result.Stderr
	lower := strings.ToLower(stderr)

	if strings.Contains(stderr, permissionErrorCode) ||
		strings.Contains(lower, "not authorised") ||
		strings.Contains(lower, "not authorized") {
		return domain.NewPermissionDeniedError("macOS blocked automation access to Notes")
	}

	if strings.Contains(stderr, folderNotFoundMarker) {
		return domain.NewNotConfiguredError("Apple Notes folder does not exist")
	}

	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = fmt.Sprintf("osascript exited with status %d", result.ExitCode)
	}
	return domain.NewScriptingError(detail)
}

// parseList parses AppleScript list output such as {"Notes", "Work"}.
// The braces are optional; empty elements are dropped.
func parseList(output string) []string {
	content := strings.TrimSpace(output)
	content = strings.TrimLeft(content, "{")
	content = strings.TrimRight(content, "}")
	content = strings.TrimSpace(content)

	result := []string{}
	if content == "" {
		return result
	}

	for _, part := range strings.Split(content, ",") {
		cleaned := strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `"`))
		if cleaned != "" {
			result = append(result, cleaned)
		}
	}
	return result
}
