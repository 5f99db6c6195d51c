// Package ui provides theme and color support for the command's output.
// It defines color schemes and lipgloss styles for consistent styling across
// the CLI presentation layer.
//
// Output from sibling universes interleaves on the shared terminal; the
// styles here only color each universe's own lines, they provide no
// cross-process coordination.
package ui
