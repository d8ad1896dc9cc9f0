// Package ui implements the wsltune terminal editor using Bubble Tea.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ wsltune  ~/.wslconfig  Memory: 8.0 GB  Swap: 0 B  VHD: ...    │  header
//	├──────────────────────────────────────────────────────────────┤
//	│ [wsl2]                                                       │
//	│   memory               8GB                                   │
//	│ * processors           2                                     │  settings
//	│ [experimental]                                               │
//	│   autoMemoryReclaim    dropCache                             │
//	├──────────────────────────────────────────────────────────────┤
//	│ enter Edit value  space Toggle on/off  s Save ...  status     │  footer
//	└──────────────────────────────────────────────────────────────┘
//
// Rows follow .wslconfig key order. A leading "*" marks a value that differs
// from the default.
//
// # Modes
//
//   - browse: move the selection, toggle booleans, reset, save
//   - edit: a text input replaces the selected value; enter applies it
//     through the facade, esc discards it
//   - export: a scrollable preview of the text Save would write
//
// All reads and writes go through a state.Facade, so the CLI and the editor
// share one set of conversion rules.
//
// # Theme
//
// Appearance is the theme.Display the resolver drives. T asks the resolver
// for the other theme, which applies it and persists it to the preferences
// file; rendering picks the palette from Appearance on every frame.
package ui
