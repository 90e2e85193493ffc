// Package file stores the note as a single HTML file on disk.
package file
