// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package inbox is the top-level Bubble Tea model of the swipe demo: a list
// of messages from the SQLite store where every row can be swiped open to
// reveal its action buttons.
//
// Button actions map to store operations:
//
//	toggle_read  Store.ToggleRead
//	flag         Store.ToggleFlag
//	archive      Store.Archive (Store.Unarchive in the archived view)
//	delete       Store.Delete
//	none         no-op, only a toast
//
// Config changes delivered by a config.Watcher rebuild every row.
package inbox
