// Package markdown exports the note to a local Markdown file.
//
// The note HTML is sanitised, rendered to Markdown with goquery and
// written over the configured file. When metadata is enabled the file
// starts with a YAML front matter block.
package markdown
