// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	for _, mode := range []string{"dark", "light", "auto", "bogus"} {
		t.Run(mode, func(t *testing.T) {
			theme := NewTheme(mode)
			if theme == nil {
				t.Fatal("NewTheme() returned nil")
			}
			if theme.App.Render("test") == "" {
				t.Error("NewTheme() should initialize App style")
			}
		})
	}
}

func TestNewThemeExplicitMode(t *testing.T) {
	if !NewTheme("dark").IsDark {
		t.Error("dark mode should report IsDark")
	}
	if NewTheme("light").IsDark {
		t.Error("light mode should not report IsDark")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme("dark")

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"Row", theme.Row},
		{"RowSelected", theme.RowSelected},
		{"RowRead", theme.RowRead},
		{"StatusBar", theme.StatusBar},
		{"EmptyState", theme.EmptyState},
		{"ShortcutKey", theme.ShortcutKey},
	}

	for _, s := range styles {
		if s.style.Render("test") == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

// =============================================================================
// BUTTON TESTS
// =============================================================================

func TestThemeButtonStyles(t *testing.T) {
	theme := NewTheme("dark")

	for _, name := range []string{"default", "primary", "success", "warning", "danger"} {
		if _, ok := theme.Buttons[name]; !ok {
			t.Errorf("missing button theme %q", name)
		}
	}

	// Padding adds one cell each side
	if w := lipgloss.Width(theme.ButtonStyle("danger").Render("Delete")); w != len("Delete")+2 {
		t.Errorf("danger button width = %d, want %d", w, len("Delete")+2)
	}
}

func TestThemeButtonStyleFallback(t *testing.T) {
	theme := NewTheme("dark")

	got := theme.ButtonStyle("no-such-theme").Render("X")
	want := theme.Buttons["default"].Render("X")
	if got != want {
		t.Errorf("unknown theme should fall back to default: %q vs %q", got, want)
	}
	if theme.ButtonStyle("DANGER").Render("X") != theme.Buttons["danger"].Render("X") {
		t.Error("theme lookup should be case-insensitive")
	}
}

// =============================================================================
// LAYOUT TESTS
// =============================================================================

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme("dark")
	theme.SetSize(120, 40)

	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize() = %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestThemeGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{0, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
	}

	theme := NewTheme("dark")
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tt.width, got, tt.want)
		}
		if got := LayoutModeFor(tt.width); got != tt.want {
			t.Errorf("LayoutModeFor(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestRenderStatusHelpers(t *testing.T) {
	if !strings.Contains(RenderSuccess("saved"), StatusIndicators.Success) {
		t.Error("RenderSuccess should include the success indicator")
	}
	if !strings.Contains(RenderError("failed"), StatusIndicators.Error) {
		t.Error("RenderError should include the error indicator")
	}
	if !strings.Contains(RenderWarning("careful"), "careful") {
		t.Error("RenderWarning should include the message")
	}
	if !strings.Contains(RenderInfo("note"), StatusIndicators.Info) {
		t.Error("RenderInfo should include the info indicator")
	}
}
