// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the sync progress view.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Retry runs the sync again once the previous run has finished.
	Retry key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "sync again"),
		),
	}
}

// ShortHelp returns the bindings shown under the results.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Quit}
}
