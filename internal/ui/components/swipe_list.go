// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swipe-tui/internal/swipe"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

// =============================================================================
// LIST CONFIG AND MESSAGES
// =============================================================================

// ListConfig configures every row of a SwipeList.
type ListConfig struct {
	Swipe     swipe.Config
	PrefixCls string
	Left      []ButtonSpec
	Right     []ButtonSpec
	// Animation is "ease", "spring" or "none".
	Animation string
}

// ButtonPressedMsg is emitted when a row button is activated.
type ButtonPressedMsg struct {
	RowID  string
	Side   swipe.Side
	Index  int
	Button ButtonSpec
}

// RowOpenedMsg is emitted when a row settles open.
type RowOpenedMsg struct {
	RowID string
	Side  swipe.Side
}

// RowClosedMsg is emitted when a row closes.
type RowClosedMsg struct {
	RowID string
}

// swipeAnimTickMsg drives settle animations of one list.
type swipeAnimTickMsg struct {
	list int64
}

var listIDs atomic.Int64

// =============================================================================
// SWIPE LIST
// =============================================================================

// SwipeList is a scrollable list of swipeable rows. It owns the activation
// bus that closes open rows when the user presses elsewhere, routes mouse
// gestures to the row under the pointer and falls back to scrolling when a
// drag is mostly vertical.
type SwipeList struct {
	id    int64
	theme *styles.Theme
	cfg   ListConfig
	keys  ListKeyMap
	clock func() time.Time

	rows     []*SwipeRow
	bus      *swipe.ActivationBus
	viewport viewport.Model
	tracker  *DragTracker

	selected int
	width    int
	height   int
	originX  int
	originY  int

	drag      *SwipeRow
	scrolling bool
	scrollY   int

	ticking   bool
	pending   []tea.Msg
	emptyText string
}

// NewSwipeList creates an empty list. clock defaults to time.Now.
func NewSwipeList(theme *styles.Theme, cfg ListConfig, clock func() time.Time) (*SwipeList, error) {
	if err := cfg.Swipe.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = time.Now
	}
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = false

	return &SwipeList{
		id:        listIDs.Add(1),
		theme:     theme,
		cfg:       cfg,
		keys:      DefaultListKeyMap(),
		clock:     clock,
		bus:       swipe.NewActivationBus(),
		viewport:  vp,
		tracker:   NewDragTracker(clock),
		width:     80,
		height:    20,
		emptyText: "Nothing here.",
	}, nil
}

// Keys returns the list key bindings.
func (l *SwipeList) Keys() ListKeyMap { return l.keys }

// Bus returns the list's activation bus.
func (l *SwipeList) Bus() *swipe.ActivationBus { return l.bus }

// Rows returns the rows in display order.
func (l *SwipeList) Rows() []*SwipeRow { return l.rows }

// Len returns the number of rows.
func (l *SwipeList) Len() int { return len(l.rows) }

// SetEmptyText sets the message shown when the list has no rows.
func (l *SwipeList) SetEmptyText(s string) { l.emptyText = s }

// Selected returns the selected row, or nil when the list is empty.
func (l *SwipeList) Selected() *SwipeRow {
	if l.selected < 0 || l.selected >= len(l.rows) {
		return nil
	}
	return l.rows[l.selected]
}

// SelectedIndex returns the index of the selected row.
func (l *SwipeList) SelectedIndex() int { return l.selected }

// Select moves the selection, clamped to the list.
func (l *SwipeList) Select(i int) {
	if len(l.rows) == 0 {
		l.selected = 0
		return
	}
	l.selected = max(0, min(i, len(l.rows)-1))
	l.refresh()
	l.ensureVisible()
}

// OpenRow returns the row that is currently open, if any.
func (l *SwipeList) OpenRow() *SwipeRow {
	for _, r := range l.rows {
		if r.panel.State().IsOpen() {
			return r
		}
	}
	return nil
}

// Dragging reports whether a row is receiving a gesture.
func (l *SwipeList) Dragging() bool { return l.drag != nil }

// SetSize sets the list's size in cells.
func (l *SwipeList) SetSize(width, height int) {
	l.width = max(width, 0)
	l.height = max(height, 0)
	l.viewport.Width = l.width
	l.viewport.Height = l.height
	l.refresh()
}

// SetOrigin sets the screen cell of the list's top-left corner so mouse
// coordinates can be mapped onto rows.
func (l *SwipeList) SetOrigin(x, y int) {
	l.originX, l.originY = x, y
	l.place()
}

// =============================================================================
// ROWS
// =============================================================================

func (l *SwipeList) rowOptions() rowOptions {
	return rowOptions{
		config:    l.cfg.Swipe,
		prefixCls: l.cfg.PrefixCls,
		left:      l.cfg.Left,
		right:     l.cfg.Right,
		animation: l.cfg.Animation,
		clock:     l.clock,
		onButton: func(rowID string, side swipe.Side, index int, spec ButtonSpec) {
			l.pending = append(l.pending, ButtonPressedMsg{RowID: rowID, Side: side, Index: index, Button: spec})
		},
		onOpen: func(rowID string, side swipe.Side) {
			l.pending = append(l.pending, RowOpenedMsg{RowID: rowID, Side: side})
		},
		onClose: func(rowID string) {
			l.pending = append(l.pending, RowClosedMsg{RowID: rowID})
		},
	}
}

// SetRows replaces the list content. Rows whose ID is already present keep
// their swipe state; rows that disappeared are torn down.
func (l *SwipeList) SetRows(contents []RowContent) error {
	var selectedID string
	if r := l.Selected(); r != nil {
		selectedID = r.ID()
	}

	existing := make(map[string]*SwipeRow, len(l.rows))
	for _, r := range l.rows {
		existing[r.ID()] = r
	}

	rows := make([]*SwipeRow, 0, len(contents))
	for _, c := range contents {
		if r, ok := existing[c.ID]; ok {
			r.SetContent(c)
			rows = append(rows, r)
			delete(existing, c.ID)
			continue
		}
		r, err := newSwipeRow(c, l.theme, l.rowOptions())
		if err != nil {
			return fmt.Errorf("row %s: %w", c.ID, err)
		}
		r.panel.Attach(l.bus)
		rows = append(rows, r)
	}

	for _, r := range existing {
		l.teardown(r)
	}

	l.rows = rows
	l.selected = 0
	for i, r := range rows {
		if r.ID() == selectedID {
			l.selected = i
			break
		}
	}
	l.refresh()
	l.ensureVisible()
	return nil
}

// RemoveRow drops one row, keeping the selection on the same index.
func (l *SwipeList) RemoveRow(id string) bool {
	for i, r := range l.rows {
		if r.ID() != id {
			continue
		}
		l.teardown(r)
		l.rows = append(l.rows[:i], l.rows[i+1:]...)
		if l.selected >= len(l.rows) {
			l.selected = max(len(l.rows)-1, 0)
		}
		l.refresh()
		l.ensureVisible()
		return true
	}
	return false
}

// UpdateRow replaces the content of one row.
func (l *SwipeList) UpdateRow(c RowContent) bool {
	for _, r := range l.rows {
		if r.ID() == c.ID {
			r.SetContent(c)
			l.refresh()
			return true
		}
	}
	return false
}

// Reconfigure rebuilds every row for a new theme and configuration. Open
// rows come back closed.
func (l *SwipeList) Reconfigure(theme *styles.Theme, cfg ListConfig) error {
	if err := cfg.Swipe.Validate(); err != nil {
		return err
	}
	l.theme = theme
	l.cfg = cfg
	l.tracker.Reset()
	l.scrolling = false

	rows := make([]*SwipeRow, 0, len(l.rows))
	for _, old := range l.rows {
		l.teardown(old)
		r, err := newSwipeRow(old.Content(), theme, l.rowOptions())
		if err != nil {
			return fmt.Errorf("row %s: %w", old.ID(), err)
		}
		r.panel.Attach(l.bus)
		rows = append(rows, r)
	}
	l.rows = rows
	log.Printf("SWIPE_RECONFIGURE | rows=%d ratio=%.2f speed=%dms animation=%s",
		len(rows), cfg.Swipe.MoveDistanceRatio, cfg.Swipe.Speed.Milliseconds(), cfg.Animation)
	l.refresh()
	return nil
}

func (l *SwipeList) teardown(r *SwipeRow) {
	if l.drag == r {
		l.drag = nil
		l.tracker.Reset()
	}
	r.panel.Teardown()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles mouse, keyboard and animation messages. Row events are
// returned as commands carrying ButtonPressedMsg, RowOpenedMsg and
// RowClosedMsg.
func (l *SwipeList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		l.handleMouse(msg)
	case tea.KeyMsg:
		l.handleKey(msg)
	case swipeAnimTickMsg:
		if msg.list != l.id {
			return nil
		}
		l.ticking = false
		l.step(styles.FrameInterval)
	default:
		return nil
	}

	l.refresh()
	return l.flush()
}

// flush turns pending row events into commands and keeps the animation
// ticking while any row is settling.
func (l *SwipeList) flush() tea.Cmd {
	var cmds []tea.Cmd
	for _, m := range l.pending {
		m := m
		cmds = append(cmds, func() tea.Msg { return m })
	}
	l.pending = nil

	if !l.ticking && l.animating() {
		l.ticking = true
		id := l.id
		cmds = append(cmds, tea.Tick(styles.FrameInterval, func(time.Time) tea.Msg {
			return swipeAnimTickMsg{list: id}
		}))
	}
	return tea.Batch(cmds...)
}

func (l *SwipeList) animating() bool {
	for _, r := range l.rows {
		if r.Animating() {
			return true
		}
	}
	return false
}

// step advances every settling row by dt.
func (l *SwipeList) step(dt time.Duration) {
	for _, r := range l.rows {
		r.Step(dt)
	}
}

// =============================================================================
// MOUSE
// =============================================================================

func (l *SwipeList) handleMouse(msg tea.MouseMsg) {
	ev := l.tracker.Handle(msg)

	switch ev.Kind {
	case PointerWheelUp:
		if l.drag == nil {
			l.viewport.LineUp(3)
		}
	case PointerWheelDown:
		if l.drag == nil {
			l.viewport.LineDown(3)
		}
	case PointerPress:
		l.press(ev)
	case PointerMove:
		l.move(ev)
	case PointerRelease:
		l.release(ev)
	}
}

func (l *SwipeList) press(ev PointerEvent) {
	if l.drag != nil {
		l.drag.panel.DragCancel()
		l.drag = nil
	}
	l.scrolling = false

	l.place()
	a := swipe.Activation{X: float64(ev.X), Y: float64(ev.Y)}
	if l.bus.Publish(a) {
		// The press closed another row; it does nothing else.
		return
	}

	idx, row := l.rowAt(a)
	if row == nil {
		return
	}
	l.selected = idx

	if side, i, ok := row.ButtonAt(ev.X - l.originX); ok {
		row.panel.Press(side, i)
		return
	}

	l.drag = row
	l.scrollY = l.viewport.YOffset
	row.panel.DragStart()
}

func (l *SwipeList) move(ev PointerEvent) {
	if l.scrolling {
		l.viewport.SetYOffset(l.scrollY - ev.DY)
		return
	}
	if l.drag == nil {
		return
	}

	if l.drag.panel.DragMove(float64(ev.DX), float64(ev.DY)) {
		return
	}

	// Rejected: a mostly vertical drag that never moved the row scrolls instead.
	sess, ok := l.drag.panel.Session()
	if abs(ev.DY) > abs(ev.DX) && (!ok || sess.Accepted == 0) {
		l.drag.panel.DragCancel()
		l.drag = nil
		l.scrolling = true
		l.viewport.SetYOffset(l.scrollY - ev.DY)
	}
}

func (l *SwipeList) release(ev PointerEvent) {
	if l.scrolling {
		l.scrolling = false
		return
	}
	if l.drag == nil {
		return
	}
	row := l.drag
	l.drag = nil

	sess, ok := row.panel.Session()
	if !ok {
		return
	}
	row.panel.DragEnd(float64(ev.DX), sess.StartTime)
}

// rowAt returns the row under a screen position.
func (l *SwipeList) rowAt(a swipe.Activation) (int, *SwipeRow) {
	for i, r := range l.rows {
		if r.contains(a) {
			return i, r
		}
	}
	return -1, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// =============================================================================
// KEYBOARD
// =============================================================================

func (l *SwipeList) handleKey(msg tea.KeyMsg) {
	if l.drag != nil {
		return
	}

	switch {
	case key.Matches(msg, l.keys.Up):
		l.moveSelection(-1)
	case key.Matches(msg, l.keys.Down):
		l.moveSelection(1)
	case key.Matches(msg, l.keys.PageUp):
		l.moveSelection(-max(l.height/2, 1))
	case key.Matches(msg, l.keys.PageDown):
		l.moveSelection(max(l.height/2, 1))
	case key.Matches(msg, l.keys.Home):
		l.moveSelection(-len(l.rows))
	case key.Matches(msg, l.keys.End):
		l.moveSelection(len(l.rows))
	case key.Matches(msg, l.keys.RevealLeft):
		l.reveal(swipe.SideLeft)
	case key.Matches(msg, l.keys.RevealRight):
		l.reveal(swipe.SideRight)
	case key.Matches(msg, l.keys.Close):
		if r := l.Selected(); r != nil {
			r.panel.Close()
		}
	case key.Matches(msg, l.keys.Button):
		l.pressNumbered(msg.String())
	}
}

func (l *SwipeList) moveSelection(delta int) {
	if len(l.rows) == 0 {
		return
	}
	next := max(0, min(l.selected+delta, len(l.rows)-1))
	if next == l.selected {
		return
	}
	l.selected = next
	l.closeOthers(l.rows[next])
	l.refresh()
	l.ensureVisible()
}

// reveal slides the selected row toward the opposite of side. Asking for the
// other side of an open row closes it, like swiping back.
func (l *SwipeList) reveal(side swipe.Side) {
	r := l.Selected()
	if r == nil {
		return
	}
	l.closeOthers(r)

	st := r.panel.State()
	if st.IsOpen() && st.Side != side {
		r.panel.Close()
		return
	}
	r.panel.Open(side)
}

func (l *SwipeList) pressNumbered(k string) {
	r := l.Selected()
	if r == nil || len(k) != 1 {
		return
	}
	st := r.panel.State()
	if !st.IsOpen() {
		return
	}
	r.panel.Press(st.Side, int(k[0]-'1'))
}

func (l *SwipeList) closeOthers(keep *SwipeRow) {
	for _, r := range l.rows {
		if r != keep {
			r.panel.Close()
		}
	}
}

// =============================================================================
// LAYOUT AND VIEW
// =============================================================================

// refresh re-renders all rows into the viewport and updates their geometry.
func (l *SwipeList) refresh() {
	if len(l.rows) == 0 {
		l.viewport.SetContent(l.theme.EmptyState.Render(l.emptyText))
		l.place()
		return
	}

	selBg := l.theme.RowSelected.GetBackground()
	lines := make([]string, 0, len(l.rows))
	for i, r := range l.rows {
		if i == l.selected {
			s := r.content.Style.Background(selBg)
			lines = append(lines, r.View(l.width, &s))
			continue
		}
		lines = append(lines, r.View(l.width, nil))
	}
	l.viewport.SetContent(strings.Join(lines, "\n"))
	l.place()
}

// place maps each row to screen coordinates for hit testing.
func (l *SwipeList) place() {
	top := 0
	clipTop, clipBottom := l.originY, l.originY+l.height
	for _, r := range l.rows {
		r.place(l.width, l.originX, l.originY+top-l.viewport.YOffset, clipTop, clipBottom)
		top += r.Height()
	}
}

// ensureVisible scrolls the viewport so the selected row is fully shown.
func (l *SwipeList) ensureVisible() {
	if len(l.rows) == 0 || l.height <= 0 {
		return
	}
	top := 0
	for i := 0; i < l.selected; i++ {
		top += l.rows[i].Height()
	}
	bottom := top + l.rows[l.selected].Height()

	switch {
	case top < l.viewport.YOffset:
		l.viewport.SetYOffset(top)
	case bottom > l.viewport.YOffset+l.height:
		l.viewport.SetYOffset(bottom - l.height)
	}
	l.place()
}

// View renders the visible part of the list.
func (l *SwipeList) View() string {
	return lipgloss.NewStyle().Width(l.width).Height(l.height).Render(l.viewport.View())
}
