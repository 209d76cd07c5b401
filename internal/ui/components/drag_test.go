// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDragTracker_Gesture(t *testing.T) {
	clock := &testClock{now: t0}
	d := NewDragTracker(clock.Now)

	ev := d.Handle(tea.MouseMsg{X: 10, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if ev.Kind != PointerPress {
		t.Fatalf("press kind = %v", ev.Kind)
	}
	if !d.Active() {
		t.Fatal("tracker should be active after press")
	}
	if !ev.Start.Equal(t0) {
		t.Errorf("start = %v, want %v", ev.Start, t0)
	}

	clock.Advance(50 * time.Millisecond)
	ev = d.Handle(tea.MouseMsg{X: 16, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if ev.Kind != PointerMove || ev.DX != 6 || ev.DY != -1 {
		t.Errorf("move = %+v, want dx=6 dy=-1", ev)
	}
	if ev.OriginX != 10 || ev.OriginY != 4 {
		t.Errorf("origin = (%d,%d)", ev.OriginX, ev.OriginY)
	}

	ev = d.Handle(tea.MouseMsg{X: 20, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if ev.Kind != PointerRelease || ev.DX != 10 {
		t.Errorf("release = %+v, want dx=10", ev)
	}
	if !ev.Start.Equal(t0) {
		t.Error("release should carry the gesture start time")
	}
	if d.Active() {
		t.Error("tracker should be idle after release")
	}
}

func TestDragTracker_IgnoresStrayEvents(t *testing.T) {
	d := NewDragTracker(nil)

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"motion without press", tea.MouseMsg{X: 1, Action: tea.MouseActionMotion}},
		{"release without press", tea.MouseMsg{X: 1, Action: tea.MouseActionRelease}},
		{"right button press", tea.MouseMsg{X: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if ev := d.Handle(tc.msg); ev.Kind != PointerNone {
				t.Errorf("kind = %v, want none", ev.Kind)
			}
		})
	}
}

func TestDragTracker_Wheel(t *testing.T) {
	d := NewDragTracker(nil)

	ev := d.Handle(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if ev.Kind != PointerWheelUp {
		t.Errorf("kind = %v, want wheel_up", ev.Kind)
	}
	ev = d.Handle(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if ev.Kind != PointerWheelDown {
		t.Errorf("kind = %v, want wheel_down", ev.Kind)
	}
	if d.Active() {
		t.Error("wheel events should not start a gesture")
	}
}

func TestDragTracker_Reset(t *testing.T) {
	d := NewDragTracker(nil)
	d.Handle(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	d.Reset()

	if ev := d.Handle(tea.MouseMsg{Action: tea.MouseActionRelease}); ev.Kind != PointerNone {
		t.Errorf("release after reset = %v, want none", ev.Kind)
	}
}

func TestPointerKindString(t *testing.T) {
	if PointerMove.String() != "move" || PointerKind(99).String() != "none" {
		t.Error("unexpected PointerKind names")
	}
}
