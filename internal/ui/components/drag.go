// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// POINTER EVENTS
// =============================================================================

// PointerKind classifies a mouse event for the swipe list.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerPress
	PointerMove
	PointerRelease
	PointerWheelUp
	PointerWheelDown
)

// String returns the kind name used in logs.
func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	case PointerWheelUp:
		return "wheel_up"
	case PointerWheelDown:
		return "wheel_down"
	default:
		return "none"
	}
}

// PointerEvent is a mouse event with drag offsets relative to the press that
// started the gesture. DX and DY are only meaningful for moves and releases.
type PointerEvent struct {
	Kind    PointerKind
	X, Y    int
	OriginX int
	OriginY int
	DX, DY  int
	Start   time.Time
}

// =============================================================================
// DRAG TRACKER
// =============================================================================

// DragTracker turns bubbletea mouse messages into press, move and release
// events for a single left-button gesture.
type DragTracker struct {
	active  bool
	originX int
	originY int
	start   time.Time
	clock   func() time.Time
}

// NewDragTracker creates a tracker. clock defaults to time.Now.
func NewDragTracker(clock func() time.Time) *DragTracker {
	if clock == nil {
		clock = time.Now
	}
	return &DragTracker{clock: clock}
}

// Active reports whether a gesture is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}

// Reset forgets the gesture in progress.
func (d *DragTracker) Reset() {
	d.active = false
}

// Handle classifies msg.
func (d *DragTracker) Handle(msg tea.MouseMsg) PointerEvent {
	ev := PointerEvent{X: msg.X, Y: msg.Y}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ev.Kind = PointerWheelUp
		return ev
	case msg.Button == tea.MouseButtonWheelDown:
		ev.Kind = PointerWheelDown
		return ev
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev
		}
		d.active = true
		d.originX, d.originY = msg.X, msg.Y
		d.start = d.clock()
		ev.Kind = PointerPress

	case tea.MouseActionMotion:
		if !d.active {
			return ev
		}
		ev.Kind = PointerMove

	case tea.MouseActionRelease:
		if !d.active {
			return ev
		}
		d.active = false
		ev.Kind = PointerRelease

	default:
		return ev
	}

	ev.OriginX, ev.OriginY = d.originX, d.originY
	ev.DX, ev.DY = msg.X-d.originX, msg.Y-d.originY
	ev.Start = d.start
	return ev
}
