// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swipe-tui/internal/swipe"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
	"github.com/jeranaias/swipe-tui/internal/util"
)

// =============================================================================
// ROW TYPES
// =============================================================================

// ButtonSpec describes one action button built on every row.
type ButtonSpec struct {
	Text      string
	Theme     string
	ClassName string
	Action    string
}

// RowContent is what a row shows on its sliding surface. Lines are plain
// text; Style is applied after the row has been cut to width.
type RowContent struct {
	ID    string
	Lines []string
	Style lipgloss.Style
}

// rowOptions carries the list-wide settings every row is built from.
type rowOptions struct {
	config    swipe.Config
	prefixCls string
	left      []ButtonSpec
	right     []ButtonSpec
	animation string
	clock     func() time.Time
	onButton  func(rowID string, side swipe.Side, index int, spec ButtonSpec)
	onOpen    func(rowID string, side swipe.Side)
	onClose   func(rowID string)
}

// =============================================================================
// SWIPE ROW
// =============================================================================

// SwipeRow is one list item: a sliding content surface over two button
// groups. It renders the transitions its swipe.Panel emits.
type SwipeRow struct {
	content RowContent
	panel   *swipe.Panel
	theme   *styles.Theme

	left        []ButtonSpec
	right       []ButtonSpec
	leftWidths  []int
	rightWidths []int

	anim      styles.Animator
	animating bool

	// Screen geometry, maintained by the list. Presses are only claimed
	// inside [clipTop, clipBottom).
	width      int
	screenX    int
	screenY    int
	clipTop    int
	clipBottom int
	lastFrame  swipe.Transition
}

func newSwipeRow(content RowContent, theme *styles.Theme, opts rowOptions) (*SwipeRow, error) {
	r := &SwipeRow{
		content: content,
		theme:   theme,
		left:    append([]ButtonSpec(nil), opts.left...),
		right:   append([]ButtonSpec(nil), opts.right...),
		anim:    styles.NewAnimator(opts.animation),
	}

	id := content.ID
	build := func(side swipe.Side, specs []ButtonSpec) []swipe.Button {
		out := make([]swipe.Button, len(specs))
		for i, spec := range specs {
			out[i] = swipe.Button{
				Theme:     spec.Theme,
				ClassName: spec.ClassName,
				Text:      spec.Text,
				OnClick: func() {
					if opts.onButton != nil {
						opts.onButton(id, side, i, spec)
					}
				},
			}
		}
		return out
	}

	panel, err := swipe.NewPanel(swipe.Options{
		ID:        id,
		PrefixCls: opts.prefixCls,
		Config:    opts.config,
		Left:      build(swipe.SideLeft, r.left),
		Right:     build(swipe.SideRight, r.right),
		OnOpen: func(side swipe.Side) {
			if opts.onOpen != nil {
				opts.onOpen(id, side)
			}
		},
		OnClose: func() {
			if opts.onClose != nil {
				opts.onClose(id)
			}
		},
		Renderer: r,
		Region:   swipe.RegionFunc(r.contains),
		Clock:    opts.clock,
	})
	if err != nil {
		return nil, err
	}
	r.panel = panel
	r.measure()
	return r, nil
}

// measure sizes both button groups with lipgloss and hands the extents to
// the panel.
func (r *SwipeRow) measure() {
	r.leftWidths = r.buttonWidths(swipe.SideLeft, r.left)
	r.rightWidths = r.buttonWidths(swipe.SideRight, r.right)
	r.panel.Measure(swipe.Widths(float64(sum(r.leftWidths)), float64(sum(r.rightWidths))))
}

func (r *SwipeRow) buttonWidths(side swipe.Side, specs []ButtonSpec) []int {
	out := make([]int, len(specs))
	for i, spec := range specs {
		label := r.label(side, i, spec)
		out[i] = lipgloss.Width(r.theme.ButtonStyle(spec.Theme).Render(label))
	}
	return out
}

func (r *SwipeRow) label(side swipe.Side, i int, spec ButtonSpec) string {
	return swipe.Button{Text: spec.Text}.Label(side, i)
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

// ID returns the row identifier.
func (r *SwipeRow) ID() string { return r.content.ID }

// Panel returns the row's swipe panel.
func (r *SwipeRow) Panel() *swipe.Panel { return r.panel }

// Content returns what the row displays.
func (r *SwipeRow) Content() RowContent { return r.content }

// SetContent replaces the displayed content. The swipe state is kept.
func (r *SwipeRow) SetContent(c RowContent) {
	c.ID = r.content.ID
	r.content = c
}

// Height returns the number of terminal lines the row occupies.
func (r *SwipeRow) Height() int {
	if len(r.content.Lines) == 0 {
		return 1
	}
	return len(r.content.Lines)
}

// Animating reports whether the row is still settling.
func (r *SwipeRow) Animating() bool { return r.animating }

// Offset returns the displayed offset in whole cells.
func (r *SwipeRow) Offset() int {
	return int(math.Round(r.anim.Position()))
}

// LastTransition returns the most recent transition the panel emitted.
func (r *SwipeRow) LastTransition() swipe.Transition { return r.lastFrame }

// Render implements swipe.Renderer. Live transitions track the pointer
// exactly; timed ones start an animation.
func (r *SwipeRow) Render(t swipe.Transition) {
	r.lastFrame = t
	if t.Live() {
		r.anim.Jump(t.Offset)
		r.animating = false
		return
	}
	r.anim.Retarget(t.Offset, t.Duration)
	r.animating = !r.anim.Settled()
}

// Step advances the settle animation and reports whether it is still running.
func (r *SwipeRow) Step(dt time.Duration) bool {
	if !r.animating {
		return false
	}
	_, settled := r.anim.Step(dt)
	r.animating = !settled
	return r.animating
}

// place records where the list drew the row and the visible band of the list.
func (r *SwipeRow) place(width, screenX, screenY, clipTop, clipBottom int) {
	r.width = width
	r.screenX = screenX
	r.screenY = screenY
	r.clipTop = clipTop
	r.clipBottom = clipBottom
}

// contains reports whether a press at screen cell (X, Y) hit this row.
func (r *SwipeRow) contains(a swipe.Activation) bool {
	x, y := int(a.X)-r.screenX, int(a.Y)
	top := max(r.screenY, r.clipTop)
	bottom := min(r.screenY+r.Height(), r.clipBottom)
	return x >= 0 && x < r.width && y >= top && y < bottom
}

// ButtonAt returns the visible button under screen column x, if any.
func (r *SwipeRow) ButtonAt(x int) (swipe.Side, int, bool) {
	st := r.panel.State()
	if !st.IsOpen() {
		return swipe.SideNone, 0, false
	}
	off := r.Offset()

	switch st.Side {
	case swipe.SideLeft:
		if x < 0 || x >= off {
			return swipe.SideNone, 0, false
		}
		if i, ok := indexAt(r.leftWidths, x); ok {
			return swipe.SideLeft, i, true
		}
	case swipe.SideRight:
		n := -off
		if x < r.width-n || x >= r.width {
			return swipe.SideNone, 0, false
		}
		col := x - r.width + sum(r.rightWidths)
		if i, ok := indexAt(r.rightWidths, col); ok {
			return swipe.SideRight, i, true
		}
	}
	return swipe.SideNone, 0, false
}

func indexAt(widths []int, col int) (int, bool) {
	if col < 0 {
		return 0, false
	}
	c := 0
	for i, w := range widths {
		if col < c+w {
			return i, true
		}
		c += w
	}
	return 0, false
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the row at width cells. style overrides the content style
// when non-nil (selection highlight).
func (r *SwipeRow) View(width int, override *lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	style := r.content.Style
	if override != nil {
		style = *override
	}

	off := r.Offset()
	if off > width {
		off = width
	}
	if off < -width {
		off = -width
	}

	lines := r.content.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}
	labelLine := (len(lines) - 1) / 2

	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case off > 0:
			out[i] = r.panelSlice(swipe.SideLeft, i == labelLine, 0, off) +
				style.Render(util.CutWidth(line, 0, width-off))
		case off < 0:
			n := -off
			out[i] = style.Render(util.CutWidth(line, n, width-n)) +
				r.panelSlice(swipe.SideRight, i == labelLine, sum(r.rightWidths)-n, n)
		default:
			out[i] = style.Render(util.CutWidth(line, 0, width))
		}
	}
	return strings.Join(out, "\n")
}

// panelSlice renders panel columns [start, start+width) of one side. Columns
// outside the button group (slack overshoot) are blank.
func (r *SwipeRow) panelSlice(side swipe.Side, withLabel bool, start, width int) string {
	specs, widths := r.left, r.leftWidths
	if side == swipe.SideRight {
		specs, widths = r.right, r.rightWidths
	}

	var sb strings.Builder
	end := start + width
	if start < 0 {
		lead := -start
		if lead > width {
			lead = width
		}
		sb.WriteString(strings.Repeat(" ", lead))
	}

	c := 0
	for i, spec := range specs {
		bw := widths[i]
		a, b := max(start, c), min(end, c+bw)
		if a < b {
			text := strings.Repeat(" ", bw)
			if withLabel {
				text = util.PadRight(" "+r.label(side, i, spec)+" ", bw)
			}
			piece := util.CutWidth(text, a-c, b-a)
			sb.WriteString(r.theme.ButtonStyle(spec.Theme).UnsetPadding().Render(piece))
		}
		c += bw
	}

	if end > c {
		from := max(start, c)
		if from < end {
			sb.WriteString(strings.Repeat(" ", end-from))
		}
	}
	return sb.String()
}
