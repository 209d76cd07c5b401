// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style

	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// ROW STYLES
	// ==========================================================================

	Row         lipgloss.Style
	RowSelected lipgloss.Style
	RowUnread   lipgloss.Style
	RowRead     lipgloss.Style
	RowMeta     lipgloss.Style
	RowFlag     lipgloss.Style
	EmptyState  lipgloss.Style

	// ==========================================================================
	// ACTION BUTTON STYLES
	// ==========================================================================

	// Buttons maps a button theme ("default", "primary", ...) to its style.
	Buttons map[string]lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusValue  lipgloss.Style
	StatusOpen   lipgloss.Style
	StatusClosed lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// ACCESSIBILITY: Status indicator styles with shapes and high contrast
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
//
// mode is "dark", "light" or "auto". Anything else is treated as "auto",
// which asks the terminal for its background.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Rows
	t.Row = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.RowSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg)

	t.RowUnread = lipgloss.NewStyle().
		Bold(true)

	t.RowRead = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.RowMeta = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.RowFlag = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.EmptyState = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	// Buttons: solid blocks, one cell of padding each side
	button := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	t.Buttons = map[string]lipgloss.Style{
		"default": button.Foreground(TextPrimary).Background(Overlay),
		"primary": button.Foreground(TextInverse).Background(Cyan),
		"success": button.Foreground(TextInverse).Background(Emerald),
		"warning": button.Foreground(TextInverse).Background(Amber),
		"danger":  button.Foreground(TextInverse).Background(Rose),
	}

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(SurfaceDim)

	t.StatusValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceDim).
		Bold(true)

	t.StatusOpen = lipgloss.NewStyle().
		Foreground(Emerald).
		Background(SurfaceDim).
		Bold(true)

	t.StatusClosed = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)
}

// ButtonStyle returns the style for a button theme, falling back to "default".
func (t *Theme) ButtonStyle(theme string) lipgloss.Style {
	if s, ok := t.Buttons[strings.ToLower(theme)]; ok {
		return s
	}
	return t.Buttons["default"]
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	return LayoutModeFor(t.Width)
}

// LayoutModeFor returns the layout mode for a terminal width.
func LayoutModeFor(width int) LayoutMode {
	if width < 60 {
		return LayoutNarrow
	}
	if width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
