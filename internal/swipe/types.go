// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SIDES AND PHASES
// =============================================================================

// Side identifies one of the two action panels.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the display string for the side
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Phase is the committed state of a panel. It survives between gestures.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
)

// String returns the display string for the phase
func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpen:
		return "open"
	default:
		return "unknown"
	}
}

// =============================================================================
// PANEL SET
// =============================================================================

// PanelSet holds the measured extents of the two side panels.
// A nil extent means that side has no panel and swiping toward it is disallowed.
type PanelSet struct {
	Left  *float64
	Right *float64
}

// Widths builds a PanelSet from measured widths. Non-positive widths mark the
// side as absent.
func Widths(left, right float64) PanelSet {
	var p PanelSet
	if left > 0 {
		l := left
		p.Left = &l
	}
	if right > 0 {
		r := right
		p.Right = &r
	}
	return p
}

// LeftWidth returns the left extent and whether the left panel exists.
func (p PanelSet) LeftWidth() (float64, bool) {
	if p.Left == nil || *p.Left <= 0 {
		return 0, false
	}
	return *p.Left, true
}

// RightWidth returns the right extent and whether the right panel exists.
func (p PanelSet) RightWidth() (float64, bool) {
	if p.Right == nil || *p.Right <= 0 {
		return 0, false
	}
	return *p.Right, true
}

// Has reports whether the given side has a panel.
func (p PanelSet) Has(side Side) bool {
	switch side {
	case SideLeft:
		_, ok := p.LeftWidth()
		return ok
	case SideRight:
		_, ok := p.RightWidth()
		return ok
	}
	return false
}

// Empty reports whether neither side has a panel.
func (p PanelSet) Empty() bool {
	return !p.Has(SideLeft) && !p.Has(SideRight)
}

// Rest returns the resting offset of the foreground surface for a side:
// +left extent, -right extent, or 0.
func (p PanelSet) Rest(side Side) float64 {
	switch side {
	case SideLeft:
		w, _ := p.LeftWidth()
		return w
	case SideRight:
		w, _ := p.RightWidth()
		return -w
	}
	return 0
}

// Bounds returns the live-drag travel range [lo, hi] including slack.
// An absent side contributes 0.
func (p PanelSet) Bounds(slack float64) (lo, hi float64) {
	if w, ok := p.LeftWidth(); ok {
		hi = w + slack
	}
	if w, ok := p.RightWidth(); ok {
		lo = -(w + slack)
	}
	return lo, hi
}

// Clamp limits an offset to Bounds(slack).
func (p PanelSet) Clamp(offset, slack float64) float64 {
	lo, hi := p.Bounds(slack)
	if offset < lo {
		return lo
	}
	if offset > hi {
		return hi
	}
	return offset
}

// =============================================================================
// CONFIG
// =============================================================================

// Scroll-versus-swipe disambiguation. Fixed, not configurable.
const (
	// MinSwipeDistance is the horizontal travel below which a sample is never a swipe.
	MinSwipeDistance = 5.0
	// MaxVerticalRatio rejects samples whose vertical travel reaches this share of horizontal travel.
	MaxVerticalRatio = 0.3
)

// Default tuning values.
const (
	DefaultMoveDistanceRatio = 0.5
	DefaultMoveTimeSpan      = 300 * time.Millisecond
	DefaultSpeed             = 300 * time.Millisecond
	DefaultSlack             = 10.0
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid swipe config")

// Config tunes one panel. It is copied into the panel at construction and
// never mutated afterwards; replacing it means building a new Panel.
type Config struct {
	// MoveDistanceRatio is the share of a panel's extent a drag must cover to open it (0 < r <= 1).
	MoveDistanceRatio float64
	// MoveTimeSpan is the longest gesture that still counts as a flick.
	MoveTimeSpan time.Duration
	// Speed is the duration of settle transitions.
	Speed time.Duration
	// Slack is the overshoot allowed past a panel's extent while dragging.
	Slack float64
	// Disabled rejects every gesture.
	Disabled bool
	// AutoClose closes the panel after one of its buttons is activated.
	AutoClose bool
}

// DefaultConfig returns a Config with the default tuning values.
func DefaultConfig() Config {
	return Config{
		MoveDistanceRatio: DefaultMoveDistanceRatio,
		MoveTimeSpan:      DefaultMoveTimeSpan,
		Speed:             DefaultSpeed,
		Slack:             DefaultSlack,
	}
}

// Validate checks the tuning ranges.
func (c Config) Validate() error {
	if c.MoveDistanceRatio <= 0 || c.MoveDistanceRatio > 1 {
		return fmt.Errorf("%w: move distance ratio must be in (0, 1], got %g", ErrInvalidConfig, c.MoveDistanceRatio)
	}
	if c.MoveTimeSpan < 0 {
		return fmt.Errorf("%w: move time span cannot be negative", ErrInvalidConfig)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: speed cannot be negative", ErrInvalidConfig)
	}
	if c.Slack < 0 {
		return fmt.Errorf("%w: slack cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// =============================================================================
// SESSION AND STATE
// =============================================================================

// SessionMode distinguishes a live drag from the gesture that closed an open panel.
type SessionMode int

const (
	// SessionLive processes move samples normally.
	SessionLive SessionMode = iota
	// SessionClosing ignores every move until the next gesture starts.
	SessionClosing
)

// DragSession is the ephemeral record of the gesture in progress.
type DragSession struct {
	StartTime   time.Time
	LastOffsetX float64
	Mode        SessionMode
	// Accepted counts the move samples the classifier accepted.
	Accepted int
}

// SwipeState is the persistent state of one panel.
// OffsetLeft and Duration are the current visual target.
type SwipeState struct {
	Phase      Phase
	Side       Side
	OffsetLeft float64
	Duration   time.Duration
}

// IsOpen reports whether the committed state is open.
func (s SwipeState) IsOpen() bool {
	return s.Phase == PhaseOpen
}
