// Package ui holds the shortcut reference's screens and the bubbletea adapter
// that drives them.
//
// Screens:
//   - MainScreen: ranked table of shortcuts, the bottom of every stack
//   - AddScreen: overlay form for a new shortcut
//   - ConfirmRemoveScreen: overlay asking before a shortcut is deleted
//   - HelpScreen: overlay listing every key
//
// All screens share one State. The navigator in package screen owns the stack;
// NewProgram wraps it in a tea.Model so bubbletea supplies input and output.
package ui
