// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swipe-tui/internal/swipe"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
	"github.com/jeranaias/swipe-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents what the selected row is doing.
type Status int

const (
	StatusReady Status = iota
	StatusDragging
	StatusSettling
	StatusOpen
	StatusDisabled
	StatusError
)

// String returns the display string for the status
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusDragging:
		return "Dragging"
	case StatusSettling:
		return "Settling"
	case StatusOpen:
		return "Open"
	case StatusDisabled:
		return "Disabled"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusDragging:
		return "<>"
	case StatusSettling:
		return "~"
	case StatusOpen:
		return "[=]"
	case StatusDisabled:
		return "-"
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom bar of the inbox. It shows message counts and the
// swipe state of the selected row, including how far the current drag is
// toward the open threshold.
type StatusBar struct {
	Total         int
	Unread        int
	ShowArchived  bool
	Status        Status
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme

	// Selected row
	RowID    string
	State    swipe.SwipeState
	Offset   int
	Panels   swipe.PanelSet
	Ratio    float64
	Decision swipe.Decision

	Disabled bool
}

// NewStatusBar creates a new StatusBar component
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		Ratio:         swipe.DefaultMoveDistanceRatio,
		theme:         theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetCounts updates the message counters.
func (s *StatusBar) SetCounts(total, unread int) {
	s.Total = total
	s.Unread = unread
}

// SetStatus updates the current status
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetRow copies the swipe state of the selected row. A nil row clears it.
func (s *StatusBar) SetRow(row *SwipeRow, dragging bool) {
	if row == nil {
		s.RowID = ""
		s.State = swipe.SwipeState{}
		s.Offset = 0
		s.Panels = swipe.PanelSet{}
		s.Decision = swipe.Decision{}
		if s.Status != StatusError {
			s.Status = StatusReady
		}
		return
	}

	p := row.Panel()
	s.RowID = row.ID()
	s.State = p.State()
	s.Offset = row.Offset()
	s.Panels = p.Panels()
	s.Ratio = p.Config().MoveDistanceRatio
	s.Decision = p.LastDecision()
	s.Disabled = p.Config().Disabled

	if s.Status == StatusError {
		return
	}
	switch {
	case s.Disabled:
		s.Status = StatusDisabled
	case dragging:
		s.Status = StatusDragging
	case row.Animating():
		s.Status = StatusSettling
	case s.State.IsOpen():
		s.Status = StatusOpen
	default:
		s.Status = StatusReady
	}
}

// ThresholdPercent returns how far the displayed offset is toward the
// distance that opens the panel on that side, capped at 100.
func (s *StatusBar) ThresholdPercent() float64 {
	if s.Offset == 0 || s.Ratio <= 0 {
		return 0
	}
	var extent float64
	var ok bool
	if s.Offset > 0 {
		extent, ok = s.Panels.LeftWidth()
	} else {
		extent, ok = s.Panels.RightWidth()
	}
	if !ok {
		return 0
	}
	p := math.Abs(float64(s.Offset)) / (extent * s.Ratio) * 100
	return math.Min(p, 100)
}

// View renders the status bar
func (s *StatusBar) View() string {
	switch styles.LayoutModeFor(s.Width) {
	case styles.LayoutNarrow:
		return s.viewNarrow()
	case styles.LayoutMedium:
		return s.viewMedium()
	default:
		return s.viewWide()
	}
}

// viewNarrow renders a compact status bar for narrow terminals
// Format: unread/total state bar
func (s *StatusBar) viewNarrow() string {
	counts := s.theme.StatusValue.Render(fmtNumber(s.Unread) + "/" + fmtNumber(s.Total))
	state := s.stateStyle().Render(s.Status.Icon())
	bar := s.renderThresholdBar(8)

	return s.theme.StatusBar.Width(s.Width).Render(counts + " " + state + " " + bar)
}

// viewMedium renders a medium-width status bar
// Format: Unread N | Total N | State | Threshold bar
func (s *StatusBar) viewMedium() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.OverlayDim).
		Render(" | ")

	parts := []string{
		s.renderCount("Unread", s.Unread),
		s.renderCount("Total", s.Total),
		s.stateStyle().Render(s.stateText()),
	}
	if s.Offset != 0 {
		parts = append(parts, s.renderThresholdBar(10)+" "+fmtPercent(s.ThresholdPercent()))
	}

	left := strings.Join(parts, separator)
	return s.theme.StatusBar.Width(s.Width).Render(left)
}

// viewWide renders the full status bar
// Format: Unread N | Total N | [archived] | State side offset [ms] | reason | bar  shortcuts
func (s *StatusBar) viewWide() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.OverlayDim).
		Render(" | ")

	parts := []string{
		s.renderCount("Unread", s.Unread),
		s.renderCount("Total", s.Total),
	}
	if s.ShowArchived {
		parts = append(parts, s.theme.StatusKey.Render("archived"))
	}

	state := s.stateText()
	if s.RowID != "" {
		state += " " + util.IntToString(s.Offset)
	}
	if s.Status == StatusSettling && s.State.Duration > 0 {
		state += " " + util.FormatMillis(s.State.Duration)
	}
	parts = append(parts, s.stateStyle().Render(state))

	if !s.Decision.Accepted && s.Decision.Reason != swipe.RejectNone {
		parts = append(parts, s.theme.StatusKey.Render(s.Decision.Reason.String()))
	}
	if s.Offset != 0 {
		parts = append(parts, s.renderThresholdBar(16)+" "+fmtPercent(s.ThresholdPercent()))
	}

	left := strings.Join(parts, separator)

	if !s.ShowShortcuts {
		return s.theme.StatusBar.Width(s.Width).Render(left)
	}

	shortcuts := s.renderShortcuts()
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(shortcuts) - 2
	if gap < 1 {
		return s.theme.StatusBar.Width(s.Width).Render(left)
	}
	return s.theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + shortcuts)
}

// =============================================================================
// HELPER METHODS
// =============================================================================

func (s *StatusBar) stateText() string {
	if s.Status == StatusOpen && s.State.Side != swipe.SideNone {
		return s.Status.String() + " " + s.State.Side.String()
	}
	return s.Status.String()
}

func (s *StatusBar) stateStyle() lipgloss.Style {
	switch s.Status {
	case StatusOpen:
		return s.theme.StatusOpen
	case StatusDragging, StatusSettling:
		return lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	case StatusDisabled:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	case StatusError:
		return lipgloss.NewStyle().Foreground(styles.ErrorHighContrast).Bold(true)
	default:
		return s.theme.StatusClosed
	}
}

func (s *StatusBar) renderCount(label string, n int) string {
	return s.theme.StatusKey.Render(label+" ") + s.theme.StatusValue.Render(fmtNumber(n))
}

// renderThresholdBar draws the drag progress toward the open threshold. The
// bar turns green once a release would open the panel.
func (s *StatusBar) renderThresholdBar(width int) string {
	pct := s.ThresholdPercent()
	color := styles.TextSecondary
	if pct >= 100 {
		color = styles.SuccessHighContrast
	}
	return lipgloss.NewStyle().Foreground(color).Render("[" + styles.RenderProgressBar(width, pct) + "]")
}

func (s *StatusBar) renderShortcuts() string {
	shortcuts := []struct{ key, desc string }{
		{"h/l", "swipe"},
		{"1-9", "button"},
		{"a", "archived"},
		{"?", "help"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts, s.theme.ShortcutKey.Render(sc.key)+" "+s.theme.ShortcutDesc.Render(sc.desc))
	}
	return strings.Join(parts, "  ")
}
