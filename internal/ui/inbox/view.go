// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package inbox

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swipe-tui/internal/storage"
	"github.com/jeranaias/swipe-tui/internal/ui/components"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
	"github.com/jeranaias/swipe-tui/internal/util"
)

// View renders the inbox.
func (m Model) View() string {
	parts := []string{m.headerView(), m.list.View()}

	if stack := m.toastView(); stack != "" {
		parts = append(parts, stack)
	}
	if h := m.helpView(); h != "" {
		parts = append(parts, h)
	}
	if m.cfg.UI.ShowStatus {
		parts = append(parts, m.status.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) headerView() string {
	title := "Inbox"
	if m.showArchived {
		title = "Archived"
	}
	sub := ""
	if m.loaded {
		if m.theme.GetLayoutMode() == styles.LayoutNarrow {
			sub = fmt.Sprintf("  %d/%d", m.status.Unread, m.status.Total)
		} else {
			sub = fmt.Sprintf("  %d messages, %d unread", m.status.Total, m.status.Unread)
		}
	}
	line := m.theme.HeaderTitle.Render(title) + m.theme.HeaderSubtitle.Render(sub)
	return m.theme.Header.Width(m.width).MaxHeight(headerHeight).Render(line)
}

func (m Model) toastView() string {
	return components.RenderToastStack(m.toasts.Toasts(), m.width, m.clock())
}

func (m Model) helpView() string {
	if !m.cfg.UI.ShowHelp && !m.help.ShowAll {
		return ""
	}
	return m.help.View(m.keys)
}

func countLines(s string) int {
	return strings.Count(s, "\n") + 1
}

// =============================================================================
// ROW CONTENT
// =============================================================================

// Sender and subject are cut to these widths; the preview fills what is left.
const (
	maxSenderWidth  = 24
	maxSubjectWidth = 60
)

// rowContent renders one message as a two-line row:
//
//	* ! 09:14   Grace Hopper
//	            Re: build is red again - Looks like the last merge...
func rowContent(theme *styles.Theme, msg storage.Message, now time.Time) components.RowContent {
	unread, flag := " ", " "
	if !msg.Read {
		unread = "*"
	}
	if msg.Flagged {
		flag = "!"
	}

	sender := util.TruncateWidth(msg.Sender, maxSenderWidth)
	head := fmt.Sprintf("%s %s %s  %s", unread, flag, util.PadRight(receivedLabel(msg.ReceivedAt, now), 6), sender)
	body := strings.Repeat(" ", 12) + util.TruncateWidth(msg.Subject, maxSubjectWidth)
	if msg.Preview != "" {
		body += " - " + msg.Preview
	}

	style := theme.RowRead
	switch {
	case msg.Flagged:
		style = theme.RowFlag
	case !msg.Read:
		style = theme.RowUnread.Foreground(styles.TextPrimary)
	}

	return components.RowContent{
		ID:    msg.ID,
		Lines: []string{head, body},
		Style: style,
	}
}

// receivedLabel shows the time for today's messages and the date otherwise.
func receivedLabel(t, now time.Time) string {
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return t.Format("15:04")
	}
	if y1 == y2 {
		return t.Format("Jan 2")
	}
	return t.Format("Jan 06")
}
