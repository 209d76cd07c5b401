// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package inbox

import (
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swipe-tui/internal/config"
	"github.com/jeranaias/swipe-tui/internal/storage"
	"github.com/jeranaias/swipe-tui/internal/ui/components"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MessagesLoadedMsg:
		cmds = append(cmds, m.handleLoaded(msg))

	case components.ButtonPressedMsg:
		cmds = append(cmds, m.actionCmd(msg.RowID, msg.Button.Action))

	case components.RowOpenedMsg, components.RowClosedMsg:
		// State is read back from the row when the status bar syncs.

	case ActionDoneMsg:
		cmds = append(cmds, m.handleActionDone(msg))

	case ConfigReloadedMsg:
		cmds = append(cmds, m.handleConfigReloaded(msg))
		if msg.FromWatcher && m.watcher != nil {
			cmds = append(cmds, waitForConfig(m.watcher))
		}

	case watcherClosedMsg:
		log.Printf("INBOX_WATCHER_CLOSED")

	case components.ToastTickMsg:
		cmds = append(cmds, m.handleToastTick(msg))

	default:
		// Mouse events and the list's animation ticks.
		cmds = append(cmds, m.list.Update(msg))
	}

	m.syncStatus()
	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case key.Matches(msg, m.keys.ShowArchived):
		m.showArchived = !m.showArchived
		m.loaded = false
		if m.showArchived {
			m.list.SetEmptyText("No archived messages.")
		} else {
			m.list.SetEmptyText("Inbox zero. Run `swipe seed` for demo messages.")
		}
		cmd = m.loadCmd()

	case key.Matches(msg, m.keys.Reload):
		cmd = tea.Batch(reloadConfigCmd(), m.loadCmd())

	case key.Matches(msg, m.keys.Dismiss):
		if m.toasts.DismissNewest() {
			m.layout()
		}

	default:
		cmd = m.list.Update(msg)
	}

	m.syncStatus()
	return m, cmd
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m *Model) handleLoaded(msg MessagesLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("INBOX_LOAD_ERROR | error=%v", msg.Err)
		return m.notify(components.ToastKindError, "Could not load messages: "+msg.Err.Error())
	}

	m.messages = make(map[string]storage.Message, len(msg.Messages))
	contents := make([]components.RowContent, len(msg.Messages))
	now := m.clock()
	for i, item := range msg.Messages {
		m.messages[item.ID] = item
		contents[i] = rowContent(m.theme, item, now)
	}
	m.loaded = true
	m.status.SetCounts(msg.Total, msg.Unread)
	m.status.SetStatus(components.StatusReady)

	if err := m.list.SetRows(contents); err != nil {
		return m.notify(components.ToastKindError, err.Error())
	}
	log.Printf("INBOX_LOADED | count=%d archived=%t", len(contents), m.showArchived)
	return nil
}

func (m *Model) handleActionDone(msg ActionDoneMsg) tea.Cmd {
	if msg.Err != nil {
		if errors.Is(msg.Err, storage.ErrNotFound) {
			m.removeRow(msg.RowID)
			return m.notify(components.ToastKindWarning, "Message no longer exists")
		}
		return m.notify(components.ToastKindError, "Action failed: "+msg.Err.Error())
	}
	if msg.Action == "none" || msg.Action == "" {
		return nil
	}

	m.status.SetCounts(msg.Total, msg.Unread)
	m.status.SetStatus(components.StatusReady)

	if msg.Removed {
		m.removeRow(msg.RowID)
	} else {
		m.messages[msg.RowID] = msg.Message
		m.list.UpdateRow(rowContent(m.theme, msg.Message, m.clock()))
	}
	return m.notify(components.ToastKindSuccess, actionSummary(msg, m.showArchived))
}

func (m *Model) removeRow(id string) {
	delete(m.messages, id)
	if m.list.RemoveRow(id) {
		m.layout()
	}
}

// actionSummary is the toast text after a successful action.
func actionSummary(msg ActionDoneMsg, archivedView bool) string {
	switch msg.Action {
	case "toggle_read":
		if msg.Message.Read {
			return "Marked as read"
		}
		return "Marked as unread"
	case "flag":
		if msg.Message.Flagged {
			return "Flagged"
		}
		return "Unflagged"
	case "archive":
		if archivedView {
			return "Moved to inbox"
		}
		return "Archived"
	case "delete":
		return "Deleted"
	default:
		return "Done"
	}
}

// handleConfigReloaded rebuilds the theme and every row from the new config.
// A failed reload keeps the running configuration.
func (m *Model) handleConfigReloaded(msg ConfigReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("INBOX_CONFIG_ERROR | error=%v", msg.Err)
		return m.notify(components.ToastKindError, "Config not reloaded: "+msg.Err.Error())
	}
	if msg.Config == nil {
		return nil
	}

	cfg := msg.Config
	theme := styles.NewTheme(cfg.UI.Theme)
	if err := m.list.Reconfigure(theme, listConfig(cfg)); err != nil {
		return m.notify(components.ToastKindError, "Config not applied: "+err.Error())
	}

	total, unread := m.status.Total, m.status.Unread
	m.cfg = cfg
	m.theme = theme
	m.status = components.NewStatusBar(theme)
	m.status.SetCounts(total, unread)
	config.SetGlobal(cfg)

	// Restyle the rows for the new theme.
	now := m.clock()
	for _, r := range m.list.Rows() {
		if item, ok := m.messages[r.ID()]; ok {
			m.list.UpdateRow(rowContent(theme, item, now))
		}
	}

	m.layout()
	return m.notify(components.ToastKindStatus, "Config reloaded")
}

// =============================================================================
// TOASTS AND STATUS
// =============================================================================

// notify shows a toast of kind and starts sweeping if needed. Errors also
// flag the status bar until the next successful load or action.
func (m *Model) notify(kind components.ToastKind, message string) tea.Cmd {
	switch kind {
	case components.ToastKindError:
		m.toasts.AddError(message)
		m.status.SetStatus(components.StatusError)
	case components.ToastKindWarning:
		m.toasts.AddWarning(message)
	case components.ToastKindSuccess:
		m.toasts.AddSuccess(message)
	default:
		m.toasts.AddStatus(message)
	}
	m.layout()
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return components.ToastTickCmd()
}

func (m *Model) handleToastTick(msg components.ToastTickMsg) tea.Cmd {
	before := m.toasts.Len()
	remaining := m.toasts.Sweep(msg.Time)
	if remaining != before {
		m.layout()
	}
	if remaining == 0 {
		m.toastTicking = false
		return nil
	}
	return components.ToastTickCmd()
}

func (m *Model) syncStatus() {
	m.status.ShowArchived = m.showArchived
	m.status.SetRow(m.list.Selected(), m.list.Dragging())
}
