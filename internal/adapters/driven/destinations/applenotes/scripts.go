package applenotes

import (
	"fmt"
	"strings"
)

// folderNotFoundMarker is raised by the upsert script when the target
// folder does not exist in the default account.
const folderNotFoundMarker = "Apple Notes folder not found"

const permissionProbeScript = `
try
    tell application "Notes" to return true
on error errMsg number errNum
    error errMsg number errNum
end try
`

const launchNotesScript = `
tell application "Notes"
    if it is not running then
        launch
    end if
end tell
`

const listFoldersScript = `
try
    tell application "Notes"
        set folderNames to name of folders of default account
        return folderNames
    end tell
on error errMsg number errNum
    error errMsg number errNum
end try
`

const upsertScriptTemplate = `
try
    set noteName to %[1]s
    set noteHTML to %[2]s
    set targetFolderName to %[3]s

    tell application "Notes"
        if it is not running then launch
        set targetAccount to default account
        set targetFolders to every folder of targetAccount whose name is targetFolderName
        if targetFolders is {} then
            error "%[4]s"
        end if

        set targetFolder to item 1 of targetFolders
        set notesByName to every note of targetFolder whose name is noteName

        if notesByName is {} then
            make new note at end of notes of targetFolder with properties {name:noteName, body:noteHTML}
        else
            set theNote to item 1 of notesByName
            set body of theNote to noteHTML
        end if
    end tell
on error errMsg number errNum
    error errMsg number errNum
end try
`

// buildUpsertScript returns a script that overwrites the body of the note
// named title in folder, creating the note if it does not exist.
func buildUpsertScript(title, folder, bodyHTML string) string {
	return fmt.Sprintf(upsertScriptTemplate,
		stringLiteral(title),
		stringLiteral(bodyHTML),
		stringLiteral(folder),
		folderNotFoundMarker,
	)
}

// stringLiteral quotes input as an AppleScript string expression.
// AppleScript literals cannot span lines, so multi-line input becomes
// quoted segments joined with "& return &".
func stringLiteral(input string) string {
	normalised := strings.ReplaceAll(input, "\r\n", "\n")
	normalised = strings.ReplaceAll(normalised, "\r", "\n")

	escaped := strings.ReplaceAll(normalised, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)

	lines := strings.Split(escaped, "\n")
	quoted := make([]string, len(lines))
	for i, line := range lines {
		quoted[i] = `"` + line + `"`
	}
	return strings.Join(quoted, " & return & ")
}
