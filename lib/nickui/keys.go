// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the nickname list.
type KeyMap struct {
	// Card navigation. Left/Right move within a row of the grid.
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Record actions on the selected card.
	Edit   key.Binding
	Delete key.Binding

	// List actions.
	LoadMore   key.Binding
	Activate   key.Binding // Edit a card, or load more on the button.
	FilterUser key.Binding
	Refresh    key.Binding

	// Dialog answers.
	Confirm key.Binding
	Cancel  key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (h/j/k/l) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	LoadMore: key.NewBinding(
		key.WithKeys("m", " "),
		key.WithHelp("m", "load more"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	FilterUser: key.NewBinding(
		key.WithKeys("u", "f"),
		key.WithHelp("u", "user filter"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r", "ctrl+r"),
		key.WithHelp("r", "refresh"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// shortHelp lists the bindings shown in the one-line help bar.
func (keys KeyMap) shortHelp() []key.Binding {
	return []key.Binding{keys.Quit, keys.FilterUser, keys.Edit, keys.Delete, keys.LoadMore, keys.Refresh, keys.Help}
}

// fullHelp lists the bindings shown when help is expanded, in columns.
func (keys KeyMap) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.Left, keys.Right},
		{keys.PageUp, keys.PageDown, keys.Home, keys.End},
		{keys.Edit, keys.Delete, keys.Activate, keys.LoadMore},
		{keys.FilterUser, keys.Refresh, keys.Help, keys.Quit},
	}
}
