// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import "time"

// Outcome reports what a finished gesture did to the committed state.
type Outcome int

const (
	// OutcomeNone means the gesture changed nothing (closing gesture, dropped event).
	OutcomeNone Outcome = iota
	OutcomeOpened
	OutcomeClosed
	// OutcomeSettled means the surface snapped back to the unchanged state's rest offset.
	OutcomeSettled
)

// String returns the display string for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeOpened:
		return "opened"
	case OutcomeClosed:
		return "closed"
	case OutcomeSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Hooks are the Machine's outbound notifications. All are optional.
type Hooks struct {
	// OnOpen fires exactly once per transition into the open state.
	OnOpen func(Side)
	// OnClose fires exactly once per transition into the closed state.
	OnClose func()
	// OnChange fires after every change of the visual target.
	OnChange func(SwipeState)
}

// Machine is the open/close state machine of one panel.
// It is not safe for concurrent use.
type Machine struct {
	cfg     Config
	panels  PanelSet
	state   SwipeState
	session *DragSession
	hooks   Hooks
}

// NewMachine creates a closed machine.
func NewMachine(cfg Config, panels PanelSet, hooks Hooks) *Machine {
	return &Machine{
		cfg:    cfg,
		panels: panels,
		hooks:  hooks,
	}
}

// Config returns the machine's configuration.
func (m *Machine) Config() Config {
	return m.cfg
}

// Panels returns the current panel extents.
func (m *Machine) Panels() PanelSet {
	return m.panels
}

// State returns a copy of the current state.
func (m *Machine) State() SwipeState {
	return m.state
}

// Session returns the gesture in progress, if any.
func (m *Machine) Session() (DragSession, bool) {
	if m.session == nil {
		return DragSession{}, false
	}
	return *m.session, true
}

// SetPanels replaces the measured extents, e.g. after a relayout. An open
// panel snaps to its new rest offset, or closes if its side disappeared.
func (m *Machine) SetPanels(panels PanelSet) {
	m.panels = panels
	if m.session != nil || !m.state.IsOpen() {
		return
	}
	if !panels.Has(m.state.Side) {
		m.close()
		return
	}
	if rest := panels.Rest(m.state.Side); rest != m.state.OffsetLeft {
		m.transition(rest, 0)
	}
}

// =============================================================================
// GESTURE EVENTS
// =============================================================================

// Start begins a gesture. Starting on an open panel closes it and turns the
// whole gesture into a dead zone: its moves are ignored until the next Start.
func (m *Machine) Start(now time.Time) {
	if m.session != nil {
		contractViolation("gesture start while a gesture is in progress")
		m.session = nil
	}

	if m.state.IsOpen() {
		m.session = &DragSession{StartTime: now, Mode: SessionClosing}
		m.close()
		return
	}
	m.session = &DragSession{StartTime: now, Mode: SessionLive}
}

// Move feeds one drag sample. It returns the classifier's decision; an
// accepted sample means the host should suppress its own scrolling.
func (m *Machine) Move(offsetX, offsetY float64) Decision {
	if m.session == nil {
		contractViolation("gesture move without start")
		return reject(RejectNoSession)
	}
	if m.session.Mode == SessionClosing {
		return reject(RejectDeadZone)
	}

	d := Classify(m.state, m.cfg, m.panels, offsetX, offsetY)
	if !d.Accepted {
		return d
	}
	m.session.LastOffsetX = d.Offset
	m.session.Accepted++
	m.transition(d.Offset, 0)
	return d
}

// End finishes a gesture with its final horizontal offset and duration.
func (m *Machine) End(offsetX float64, elapsed time.Duration) Outcome {
	sess := m.session
	if sess == nil {
		contractViolation("gesture end without start")
		return OutcomeNone
	}
	m.session = nil

	// The closing gesture already settled when it started.
	if sess.Mode == SessionClosing {
		return OutcomeNone
	}

	phase, side := m.decide(offsetX, elapsed)
	return m.commit(phase, side)
}

// Cancel drops the gesture in progress and settles at the committed rest offset.
func (m *Machine) Cancel() {
	if m.session == nil {
		return
	}
	m.session = nil
	m.transition(m.panels.Rest(m.state.Side), m.cfg.Speed)
}

// decide applies the distance-ratio and flick heuristics. Left is checked
// before right; with no winner the previous committed state stands.
func (m *Machine) decide(offsetX float64, elapsed time.Duration) (Phase, Side) {
	if !m.cfg.Disabled {
		flick := elapsed <= m.cfg.MoveTimeSpan
		if w, ok := m.panels.LeftWidth(); ok {
			if offsetX/w > m.cfg.MoveDistanceRatio || (offsetX > 0 && flick) {
				return PhaseOpen, SideLeft
			}
		}
		if w, ok := m.panels.RightWidth(); ok {
			if offsetX/w < -m.cfg.MoveDistanceRatio || (offsetX < 0 && flick) {
				return PhaseOpen, SideRight
			}
		}
	}
	return m.state.Phase, m.state.Side
}

func (m *Machine) commit(phase Phase, side Side) Outcome {
	wasOpen := m.state.IsOpen()
	switch {
	case phase == PhaseOpen && !wasOpen:
		m.open(side)
		return OutcomeOpened
	case phase == PhaseClosed && wasOpen:
		m.close()
		return OutcomeClosed
	default:
		m.state.Side = side
		m.transition(m.panels.Rest(side), m.cfg.Speed)
		return OutcomeSettled
	}
}

// =============================================================================
// EXTERNAL EVENTS
// =============================================================================

// OutsideActivation reacts to a press elsewhere in the host. It closes an
// open panel and reports the press as consumed; on a closed panel it is a no-op.
func (m *Machine) OutsideActivation() bool {
	if !m.state.IsOpen() {
		return false
	}
	m.close()
	return true
}

// Open opens the given side without a gesture. Any gesture in progress is dropped.
func (m *Machine) Open(side Side) bool {
	if !m.panels.Has(side) {
		return false
	}
	m.session = nil
	if m.state.IsOpen() {
		if m.state.Side == side {
			return false
		}
		m.close()
	}
	m.open(side)
	return true
}

// Close closes an open panel without a gesture.
func (m *Machine) Close() bool {
	if !m.state.IsOpen() {
		return false
	}
	m.close()
	return true
}

// =============================================================================
// ACTIONS
// =============================================================================

func (m *Machine) open(side Side) {
	m.state.Phase = PhaseOpen
	m.state.Side = side
	m.transition(m.panels.Rest(side), m.cfg.Speed)
	if m.hooks.OnOpen != nil {
		m.hooks.OnOpen(side)
	}
}

func (m *Machine) close() {
	m.state.Phase = PhaseClosed
	m.state.Side = SideNone
	m.transition(0, m.cfg.Speed)
	if m.hooks.OnClose != nil {
		m.hooks.OnClose()
	}
}

func (m *Machine) transition(offset float64, d time.Duration) {
	m.state.OffsetLeft = offset
	m.state.Duration = d
	if m.hooks.OnChange != nil {
		m.hooks.OnChange(m.state)
	}
}
