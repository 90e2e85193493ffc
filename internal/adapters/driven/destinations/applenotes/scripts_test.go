package applenotes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/notesync/internal/core/domain"
	"github.com/custodia-labs/notesync/internal/core/ports/driven"
)

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "hello", expected: `"hello"`},
		{name: "empty", input: "", expected: `""`},
		{name: "quotes", input: `say "hi"`, expected: `"say \"hi\""`},
		{name: "backslash", input: `a\b`, expected: `"a\\b"`},
		{name: "backslash before quote", input: `\"`, expected: `"\\\""`},
		{name: "newline", input: "a\nb", expected: `"a" & return & "b"`},
		{name: "crlf and cr", input: "a\r\nb\rc", expected: `"a" & return & "b" & return & "c"`},
		{name: "trailing newline", input: "a\n", expected: `"a" & return & ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stringLiteral(tt.input))
		})
	}
}

func TestBuildUpsertScript(t *testing.T) {
	script := buildUpsertScript("My Note", "Work", "<h1>My Note</h1>\n<p>Body</p>")

	assert.Contains(t, script, `set noteName to "My Note"`)
	assert.Contains(t, script, `set noteHTML to "<h1>My Note</h1>" & return & "<p>Body</p>"`)
	assert.Contains(t, script, `set targetFolderName to "Work"`)
	assert.Contains(t, script, `set targetAccount to default account`)
	assert.Contains(t, script, `every folder of targetAccount whose name is targetFolderName`)
	assert.Contains(t, script, `error "Apple Notes folder not found"`)
	assert.Contains(t, script, `every note of targetFolder whose name is noteName`)
	assert.Contains(t, script, `make new note at end of notes of targetFolder with properties {name:noteName, body:noteHTML}`)
	assert.Contains(t, script, `set body of theNote to noteHTML`)
	assert.NotContains(t, script, "%!")
}

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name     string
		result   driven.ScriptResult
		kind     domain.SyncErrorKind
		expected string
	}{
		{
			name:     "automation error code",
			result:   driven.ScriptResult{Stderr: "execution error: Notes got an error: (-1743)", ExitCode: 1},
			kind:     domain.KindPermissionDenied,
			expected: "Permission denied while running sync: macOS blocked automation access to Notes",
		},
		{
			name:   "not authorised any case",
			result: driven.ScriptResult{Stderr: "Not Authorised to send Apple events to Notes.", ExitCode: 1},
			kind:   domain.KindPermissionDenied,
		},
		{
			name:   "upper case",
			result: driven.ScriptResult{Stderr: "NOT AUTHORISED", ExitCode: 1},
			kind:   domain.KindPermissionDenied,
		},
		{
			name:   "permission wins over folder marker",
			result: driven.ScriptResult{Stderr: "Apple Notes folder not found\nnot authorised", ExitCode: 1},
			kind:   domain.KindPermissionDenied,
		},
		{
			name:     "folder not found",
			result:   driven.ScriptResult{Stderr: "execution error: Apple Notes folder not found (-2700)", ExitCode: 1},
			kind:     domain.KindNotConfigured,
			expected: "Sync not configured: Apple Notes folder does not exist",
		},
		{
			name:     "other stderr trimmed",
			result:   driven.ScriptResult{Stderr: "\n  syntax error: Expected end of line  \n", ExitCode: 1},
			kind:     domain.KindScriptingFailure,
			expected: "AppleScript failed: syntax error: Expected end of line",
		},
		{
			name:     "empty stderr",
			result:   driven.ScriptResult{ExitCode: 3},
			kind:     domain.KindScriptingFailure,
			expected: "AppleScript failed: osascript exited with status 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyFailure(tt.result)
			assert.Equal(t, tt.kind, err.Kind)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, err.Error())
			}
		})
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{name: "bracketed", output: `{"Notes", "Work", "Personal"}`, expected: []string{"Notes", "Work", "Personal"}},
		{name: "empty list", output: `{}`, expected: []string{}},
		{name: "empty output", output: "", expected: []string{}},
		{name: "trailing newline", output: "{\"Notes\"}\n", expected: []string{"Notes"}},
		{name: "bare osascript output", output: "Notes, Work\n", expected: []string{"Notes", "Work"}},
		{name: "empty elements dropped", output: `{"A", "", , "B"}`, expected: []string{"A", "B"}},
		{name: "inner spaces kept", output: `{"My Folder", " Spaced "}`, expected: []string{"My Folder", "Spaced"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseList(tt.output)
			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, result)
		})
	}
}
