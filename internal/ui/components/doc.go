// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the terminal widgets of the swipe inbox.

# Core Components

SwipeList (swipe_list.go) - Scrollable list of swipeable rows. Owns the
activation bus that closes an open row when the user presses elsewhere.

SwipeRow (swipe_row.go) - One row: a sliding content surface over a left
and a right button group, driven by a swipe.Panel.

DragTracker (drag.go) - Turns Bubble Tea mouse messages into press, move
and release events with offsets relative to the press.

StatusBar (statusbar.go) - Counts, swipe state of the selected row and a
threshold bar showing how close a drag is to opening.

ToastManager (error_toast.go) - Non-blocking notifications shown above the
status bar.

# Bubble Tea Integration

SwipeList is not a tea.Model itself; the owning model forwards messages and
receives row events as commands:

	list, err := components.NewSwipeList(theme, cfg, nil)
	...
	case tea.MouseMsg, tea.KeyMsg:
		cmd := list.Update(msg)
	case components.ButtonPressedMsg:
		// run msg.Button.Action on msg.RowID

# Theme Integration

All components take a *styles.Theme. Button colors come from
Theme.ButtonStyle, keyed by the button's theme name.
*/
package components
