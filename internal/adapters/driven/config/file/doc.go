// Package file persists notesync configuration on the local filesystem.
//
// ConfigStore keeps settings in config.toml under the config directory.
// Dotted keys map onto nested TOML tables, so "sync.markdown.path" is
// written as path inside [sync.markdown].
package file
