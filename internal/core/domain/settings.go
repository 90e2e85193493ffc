package domain

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defaults applied when a setting has never been saved.
const (
	DefaultAppleNotesTitle  = "What The Note"
	DefaultAppleNotesFolder = "Notes"
)

// MarkdownSettings configures the Markdown file destination.
type MarkdownSettings struct {
	// Enabled turns the destination on.
	Enabled bool `json:"enabled"`

	// Path is the output file. A leading ~ expands to the home directory.
	Path string `json:"path"`

	// IncludeMetadata prefixes the file with a front matter block.
	IncludeMetadata bool `json:"include_metadata"`
}

// Validate checks the Markdown settings.
func (m MarkdownSettings) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Path, validation.When(m.Enabled,
			validation.By(notBlank("markdown.path_required", "markdown path cannot be empty")),
		)),
	)
}

// AppleNotesSettings configures the Apple Notes destination.
type AppleNotesSettings struct {
	// Enabled turns the destination on.
	Enabled bool `json:"enabled"`

	// Title is the exact name of the note to create or update.
	Title string `json:"title"`

	// Folder is the exact name of the folder in the default account.
	Folder string `json:"folder"`

	// IncludeMetadata adds a "Synced from" line under the title.
	IncludeMetadata bool `json:"include_metadata"`
}

// Validate checks the Apple Notes settings.
func (a AppleNotesSettings) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.When(a.Enabled,
			validation.By(notBlank("apple_notes.title_required", "Apple Notes title cannot be empty")),
		)),
		validation.Field(&a.Folder, validation.When(a.Enabled,
			validation.By(notBlank("apple_notes.folder_required", "Apple Notes folder cannot be empty")),
		)),
	)
}

// SyncConfiguration holds every destination's settings.
// It is passed by value into each sync call.
type SyncConfiguration struct {
	Markdown   MarkdownSettings   `json:"markdown"`
	AppleNotes AppleNotesSettings `json:"apple_notes"`

	// AllowMultiple lifts the one-destination-at-a-time rule.
	AllowMultiple bool `json:"allow_multiple"`
}

// DefaultSyncConfiguration returns the configuration used before anything is saved.
func DefaultSyncConfiguration() SyncConfiguration {
	return SyncConfiguration{
		Markdown: MarkdownSettings{
			IncludeMetadata: true,
		},
		AppleNotes: AppleNotesSettings{
			Title:           DefaultAppleNotesTitle,
			Folder:          DefaultAppleNotesFolder,
			IncludeMetadata: true,
		},
	}
}

// IsEnabled returns true if the given target is switched on.
func (c SyncConfiguration) IsEnabled(target SyncTarget) bool {
	switch target {
	case SyncTargetMarkdown:
		return c.Markdown.Enabled
	case SyncTargetAppleNotes:
		return c.AppleNotes.Enabled
	default:
		return false
	}
}

// IsAnyEnabled returns true if at least one destination is switched on.
func (c SyncConfiguration) IsAnyEnabled() bool {
	return len(c.EnabledTargets()) > 0
}

// EnabledTargets returns the enabled targets in synchronisation order.
func (c SyncConfiguration) EnabledTargets() []SyncTarget {
	var targets []SyncTarget
	for _, target := range AllSyncTargets() {
		if c.IsEnabled(target) {
			targets = append(targets, target)
		}
	}
	return targets
}

// Validate enforces the configuration rules.
// Only one destination may be enabled unless AllowMultiple is set.
func (c SyncConfiguration) Validate() error {
	if !c.AllowMultiple && len(c.EnabledTargets()) > 1 {
		return fmt.Errorf("%w: only one sync target can be enabled at a time", ErrInvalidInput)
	}

	err := validation.ValidateStruct(&c,
		validation.Field(&c.Markdown),
		validation.Field(&c.AppleNotes),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
