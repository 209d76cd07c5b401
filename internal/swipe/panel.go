// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import (
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultPrefixCls names a panel's parts when no prefix is configured.
const DefaultPrefixCls = "swipe-action"

// =============================================================================
// BUTTONS
// =============================================================================

// Button is one action in a side panel.
type Button struct {
	Theme     string
	ClassName string
	Text      string
	OnClick   func()
}

// Label returns the button text, or "left0", "right1"... when it has none.
func (b Button) Label(side Side, index int) string {
	if b.Text != "" {
		return b.Text
	}
	return side.String() + strconv.Itoa(index)
}

// Region answers whether a host-wide press landed inside a panel.
type Region interface {
	Contains(Activation) bool
}

// RegionFunc adapts a function to Region.
type RegionFunc func(Activation) bool

// Contains calls f(a).
func (f RegionFunc) Contains(a Activation) bool {
	return f(a)
}

// =============================================================================
// PANEL
// =============================================================================

// Options configure a Panel. Config is copied; the panel never mutates it.
type Options struct {
	// ID identifies the panel in logs; a UUID is generated when empty.
	ID        string
	PrefixCls string
	Config    Config
	Left      []Button
	Right     []Button
	OnOpen    func(Side)
	OnClose   func()
	Renderer  Renderer
	Region    Region
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Panel owns one swipe state machine and implements the DragSource contract.
// It has a single writer: the host's event loop.
type Panel struct {
	id        string
	prefixCls string
	left      []Button
	right     []Button

	machine  *Machine
	renderer Renderer
	region   Region
	clock    func() time.Time
	onOpen   func(Side)
	onClose  func()

	sub          Subscription
	measured     bool
	lastDecision Decision
	lastOutcome  Outcome
}

// NewPanel validates the options and builds a closed panel. The panel must be
// measured before the first gesture.
func NewPanel(opts Options) (*Panel, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	p := &Panel{
		id:        opts.ID,
		prefixCls: opts.PrefixCls,
		left:      append([]Button(nil), opts.Left...),
		right:     append([]Button(nil), opts.Right...),
		renderer:  opts.Renderer,
		region:    opts.Region,
		clock:     opts.Clock,
		onOpen:    opts.OnOpen,
		onClose:   opts.OnClose,
	}
	if p.id == "" {
		p.id = uuid.NewString()
	}
	if p.prefixCls == "" {
		p.prefixCls = DefaultPrefixCls
	}
	if p.clock == nil {
		p.clock = time.Now
	}

	p.machine = NewMachine(opts.Config, PanelSet{}, Hooks{
		OnOpen:   p.handleOpen,
		OnClose:  p.handleClose,
		OnChange: p.render,
	})
	return p, nil
}

// ID returns the panel identifier.
func (p *Panel) ID() string { return p.id }

// PrefixCls returns the naming prefix for the panel's parts.
func (p *Panel) PrefixCls() string { return p.prefixCls }

// Config returns the panel's configuration.
func (p *Panel) Config() Config { return p.machine.Config() }

// State returns the current swipe state.
func (p *Panel) State() SwipeState { return p.machine.State() }

// Panels returns the measured extents.
func (p *Panel) Panels() PanelSet { return p.machine.Panels() }

// Session returns the gesture in progress, if any.
func (p *Panel) Session() (DragSession, bool) { return p.machine.Session() }

// LastDecision returns the classifier verdict for the latest move sample.
func (p *Panel) LastDecision() Decision { return p.lastDecision }

// LastOutcome returns the result of the latest finished gesture.
func (p *Panel) LastOutcome() Outcome { return p.lastOutcome }

// Buttons returns the buttons of one side.
func (p *Panel) Buttons(side Side) []Button {
	switch side {
	case SideLeft:
		return p.left
	case SideRight:
		return p.right
	}
	return nil
}

// Swipeable reports whether the panel has any buttons. A panel without
// buttons is plain content and ignores gestures.
func (p *Panel) Swipeable() bool {
	return len(p.left) > 0 || len(p.right) > 0
}

// Measure records the rendered extents of the two button groups.
func (p *Panel) Measure(panels PanelSet) {
	p.measured = true
	p.machine.SetPanels(panels)
}

// =============================================================================
// DRAG SOURCE CONTRACT
// =============================================================================

// DragStart begins a gesture on the panel.
func (p *Panel) DragStart() {
	if !p.Swipeable() {
		return
	}
	if !p.measured {
		contractViolation("gesture on unmeasured panel %s", p.id)
	}
	p.lastDecision = Decision{}
	p.machine.Start(p.clock())
}

// DragMove feeds a drag sample relative to the gesture origin and reports
// whether it was accepted, in which case the host must not scroll.
func (p *Panel) DragMove(offsetX, offsetY float64) bool {
	if !p.Swipeable() {
		return false
	}
	p.lastDecision = p.machine.Move(offsetX, offsetY)
	return p.lastDecision.Accepted
}

// DragEnd finishes the gesture that started at startTime.
func (p *Panel) DragEnd(offsetX float64, startTime time.Time) Outcome {
	if !p.Swipeable() {
		return OutcomeNone
	}
	elapsed := p.clock().Sub(startTime)
	p.lastOutcome = p.machine.End(offsetX, elapsed)
	log.Printf("SWIPE_END | panel=%s offset=%.1f elapsed=%dms outcome=%s",
		p.id, offsetX, elapsed.Milliseconds(), p.lastOutcome)
	return p.lastOutcome
}

// DragCancel abandons the gesture in progress.
func (p *Panel) DragCancel() {
	p.machine.Cancel()
}

// =============================================================================
// OUTSIDE ACTIVATION
// =============================================================================

// Attach subscribes the panel to a host's outside activations. A panel is
// attached to at most one bus; attaching again moves it.
func (p *Panel) Attach(bus *ActivationBus) {
	p.sub.Unsubscribe()
	p.sub = bus.Subscribe(p)
}

// Attached reports whether the panel is subscribed to a bus.
func (p *Panel) Attached() bool {
	return p.sub.Active()
}

// Teardown releases the bus subscription and drops any gesture in progress.
// The panel must not be used afterwards.
func (p *Panel) Teardown() {
	p.sub.Unsubscribe()
	p.sub = Subscription{}
	p.machine.session = nil
}

// Contains reports whether a press landed inside the panel.
func (p *Panel) Contains(a Activation) bool {
	if p.region == nil {
		return false
	}
	return p.region.Contains(a)
}

// OutsideActivation closes an open panel after a press elsewhere.
func (p *Panel) OutsideActivation() bool {
	consumed := p.machine.OutsideActivation()
	if consumed {
		log.Printf("SWIPE_OUTSIDE | panel=%s action=close", p.id)
	}
	return consumed
}

// =============================================================================
// BUTTONS AND PROGRAMMATIC CONTROL
// =============================================================================

// Press activates button index of side. Only buttons of the open side can be
// pressed. With AutoClose the panel closes afterwards.
func (p *Panel) Press(side Side, index int) bool {
	st := p.machine.State()
	if !st.IsOpen() || st.Side != side {
		return false
	}
	buttons := p.Buttons(side)
	if index < 0 || index >= len(buttons) {
		return false
	}

	btn := buttons[index]
	log.Printf("SWIPE_BUTTON | panel=%s side=%s button=%q", p.id, side, btn.Label(side, index))
	if btn.OnClick != nil {
		btn.OnClick()
	}
	if p.machine.Config().AutoClose {
		p.machine.Close()
	}
	return true
}

// Open opens a side without a gesture.
func (p *Panel) Open(side Side) bool {
	return p.machine.Open(side)
}

// Close closes the panel without a gesture.
func (p *Panel) Close() bool {
	return p.machine.Close()
}

func (p *Panel) handleOpen(side Side) {
	log.Printf("SWIPE_OPEN | panel=%s side=%s", p.id, side)
	if p.onOpen != nil {
		p.onOpen(side)
	}
}

func (p *Panel) handleClose() {
	log.Printf("SWIPE_CLOSE | panel=%s", p.id)
	if p.onClose != nil {
		p.onClose()
	}
}

func (p *Panel) render(s SwipeState) {
	if p.renderer != nil {
		p.renderer.Render(Emit(s))
	}
}
