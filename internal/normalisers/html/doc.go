// Package html transforms editor HTML into markup that destinations
// without the editor's interactive affordances can display.
//
// The transform is a pure function of its input: it never fails, and on
// unbalanced markup it degrades to leaving the unmatched fragment as-is.
// Task-list markers and checkboxes are removed, nested task-list wrappers
// are repaired, and lists are flattened into one <div> line per item.
package html
