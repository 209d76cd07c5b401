// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swipe-tui/internal/swipe"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusDragging, "Dragging"},
		{StatusSettling, "Settling"},
		{StatusOpen, "Open"},
		{StatusDisabled, "Disabled"},
		{StatusError, "Error"},
		{Status(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusBar_SetRow(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")
	sb := NewStatusBar(styles.NewTheme("dark"))

	sb.SetRow(r, false)
	if sb.Status != StatusReady || sb.RowID != "m1" {
		t.Errorf("closed row: status=%v id=%q", sb.Status, sb.RowID)
	}

	r.Panel().Open(swipe.SideRight)
	sb.SetRow(r, false)
	if sb.Status != StatusOpen || sb.Offset != -17 {
		t.Errorf("open row: status=%v offset=%d", sb.Status, sb.Offset)
	}
	if !strings.Contains(sb.stateText(), "right") {
		t.Errorf("state text %q should name the side", sb.stateText())
	}

	sb.SetRow(nil, false)
	if sb.RowID != "" || sb.Offset != 0 {
		t.Error("nil row should clear the selection")
	}
}

func TestStatusBar_ThresholdPercent(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme("dark"))
	sb.Panels = swipe.Widths(12, 20)
	sb.Ratio = 0.5

	tests := []struct {
		offset int
		want   float64
	}{
		{0, 0},
		{3, 50},
		{6, 100},
		{14, 100},
		{-5, 50},
		{-10, 100},
	}
	for _, tc := range tests {
		sb.Offset = tc.offset
		if got := sb.ThresholdPercent(); got != tc.want {
			t.Errorf("offset %d: ThresholdPercent() = %v, want %v", tc.offset, got, tc.want)
		}
	}

	sb.Panels = swipe.Widths(0, 20)
	sb.Offset = 4
	if got := sb.ThresholdPercent(); got != 0 {
		t.Errorf("missing side: got %v, want 0", got)
	}
}

func TestStatusBar_ViewLayouts(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme("dark"))
	sb.SetCounts(1234, 56)
	sb.Panels = swipe.Widths(12, 17)
	sb.Offset = 6
	sb.Status = StatusDragging

	for _, width := range []int{40, 80, 140} {
		sb.SetWidth(width)
		view := sb.View()
		if w := lipgloss.Width(view); w != width {
			t.Errorf("width %d: rendered %d cells", width, w)
		}
		if !strings.Contains(view, "56") {
			t.Errorf("width %d: unread count missing: %q", width, view)
		}
	}

	sb.SetWidth(140)
	view := sb.View()
	for _, want := range []string{"1,234", "Dragging", "100%", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("wide view missing %q: %q", want, view)
		}
	}
}

func TestStatusBar_ShowsRejectReason(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme("dark"))
	sb.SetWidth(140)
	sb.Decision = swipe.Decision{Reason: swipe.RejectVertical}

	if !strings.Contains(sb.View(), swipe.RejectVertical.String()) {
		t.Error("wide view should show why the last sample was rejected")
	}
}

func TestStatusBar_SettlingShowsDuration(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme("dark"))
	sb.SetWidth(140)
	sb.RowID = "m1"
	sb.Status = StatusSettling
	sb.State = swipe.SwipeState{Phase: swipe.PhaseOpen, Side: swipe.SideLeft, Duration: 300 * time.Millisecond}

	if !strings.Contains(sb.View(), "300ms") {
		t.Errorf("settling view should show the animation duration: %q", sb.View())
	}

	sb.Status = StatusOpen
	if strings.Contains(sb.View(), "300ms") {
		t.Error("duration should only show while settling")
	}
}

func TestStatusBar_ErrorStatusSticks(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")
	sb := NewStatusBar(styles.NewTheme("dark"))

	sb.SetStatus(StatusError)
	sb.SetRow(r, true)
	if sb.Status != StatusError {
		t.Errorf("SetRow replaced error status with %v", sb.Status)
	}

	sb.SetStatus(StatusReady)
	sb.SetRow(r, true)
	if sb.Status != StatusDragging {
		t.Errorf("status after clearing error = %v, want Dragging", sb.Status)
	}
}
