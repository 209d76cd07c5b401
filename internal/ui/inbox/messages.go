// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package inbox

import (
	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
)

// MessagesLoadedMsg carries a fresh listing from the store.
type MessagesLoadedMsg struct {
	Messages []storage.Message
	Total    int
	Unread   int
	Err      error
}

// ActionDoneMsg reports the result of a button action.
type ActionDoneMsg struct {
	RowID  string
	Action string
	// Message is the updated item; zero when it left the current view.
	Message storage.Message
	Removed bool
	Total   int
	Unread  int
	Err     error
}

// ConfigReloadedMsg is a reload result, either from the watcher or from the
// reload key.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
	// FromWatcher is set when the watcher delivered it; the model then waits
	// for the next one.
	FromWatcher bool
}

// watcherClosedMsg is returned once the watcher's channel is closed.
type watcherClosedMsg struct{}
