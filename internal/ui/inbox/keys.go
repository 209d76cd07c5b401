// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package inbox

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/swipe-tui/internal/ui/components"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap holds the application bindings plus those of the list.
type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	Reload       key.Binding
	ShowArchived key.Binding
	Dismiss      key.Binding

	List components.ListKeyMap
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ShowArchived: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "inbox/archived"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss toast"),
		),
		List: components.DefaultListKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return append(k.List.ShortHelp(), k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.List.FullHelp(),
		[]key.Binding{k.ShowArchived, k.Reload, k.Dismiss, k.Help, k.Quit})
}
