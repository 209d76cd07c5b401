// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package inbox

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
)

// =============================================================================
// STORE COMMANDS
// =============================================================================

// loadCmd lists the current view and the counters.
func (m Model) loadCmd() tea.Cmd {
	store, timeout, archived := m.store, m.timeout, m.showArchived
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		msgs, err := store.List(ctx, archived)
		if err != nil {
			return MessagesLoadedMsg{Err: err}
		}
		if archived {
			msgs = onlyArchived(msgs)
		}
		total, unread, err := store.Counts(ctx)
		return MessagesLoadedMsg{Messages: msgs, Total: total, Unread: unread, Err: err}
	}
}

func onlyArchived(msgs []storage.Message) []storage.Message {
	out := msgs[:0]
	for _, msg := range msgs {
		if msg.Archived {
			out = append(out, msg)
		}
	}
	return out
}

// actionCmd runs a button action against the store.
func (m Model) actionCmd(rowID, action string) tea.Cmd {
	store, timeout, archived := m.store, m.timeout, m.showArchived
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		done := ActionDoneMsg{RowID: rowID, Action: action}
		switch action {
		case "toggle_read":
			done.Message, done.Err = store.ToggleRead(ctx, rowID)
		case "flag":
			done.Message, done.Err = store.ToggleFlag(ctx, rowID)
		case "archive":
			if archived {
				done.Err = store.Unarchive(ctx, rowID)
			} else {
				done.Err = store.Archive(ctx, rowID)
			}
			done.Removed = true
		case "delete":
			done.Err = store.Delete(ctx, rowID)
			done.Removed = true
		case "none", "":
			return done
		default:
			done.Err = fmt.Errorf("unknown action %q", action)
			return done
		}

		if done.Err != nil {
			log.Printf("INBOX_ACTION_ERROR | id=%s action=%s error=%v", rowID, action, done.Err)
			return done
		}
		done.Total, done.Unread, done.Err = store.Counts(ctx)
		log.Printf("INBOX_ACTION | id=%s action=%s removed=%t", rowID, action, done.Removed)
		return done
	}
}

// =============================================================================
// CONFIG COMMANDS
// =============================================================================

// waitForConfig blocks until the watcher delivers the next reload.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-w.Updates()
		if !ok {
			return watcherClosedMsg{}
		}
		return ConfigReloadedMsg{Config: u.Config, Err: u.Err, FromWatcher: true}
	}
}

// reloadConfigCmd reads the config from disk. A broken file reports its
// error and keeps the running configuration.
func reloadConfigCmd() tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load()
		if err != nil {
			return ConfigReloadedMsg{Err: err}
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
