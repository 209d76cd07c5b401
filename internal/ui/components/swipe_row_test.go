// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/swipe-tui/internal/swipe"
	"github.com/jeranaias/swipe-tui/internal/ui/styles"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Button widths with one cell of padding: Read 6, Flag 6, Archive 9, Delete 8.
var (
	testLeft = []ButtonSpec{
		{Text: "Read", Theme: "primary", Action: "toggle_read"},
		{Text: "Flag", Theme: "success", Action: "flag"},
	}
	testRight = []ButtonSpec{
		{Text: "Archive", Theme: "warning", Action: "archive"},
		{Text: "Delete", Theme: "danger", Action: "delete"},
	}
)

func testSwipeConfig() swipe.Config {
	cfg := swipe.DefaultConfig()
	cfg.Slack = 2
	cfg.AutoClose = true
	return cfg
}

type rowEvents struct {
	buttons []ButtonSpec
	opens   []swipe.Side
	closes  int
}

func newTestRow(t *testing.T, clock *testClock, animation string) (*SwipeRow, *rowEvents) {
	t.Helper()
	ev := &rowEvents{}
	r, err := newSwipeRow(RowContent{ID: "m1", Lines: []string{"alice  Lunch on friday?"}},
		styles.NewTheme("dark"),
		rowOptions{
			config:    testSwipeConfig(),
			left:      testLeft,
			right:     testRight,
			animation: animation,
			clock:     clock.Now,
			onButton: func(_ string, _ swipe.Side, _ int, spec ButtonSpec) {
				ev.buttons = append(ev.buttons, spec)
			},
			onOpen:  func(_ string, side swipe.Side) { ev.opens = append(ev.opens, side) },
			onClose: func(string) { ev.closes++ },
		})
	require.NoError(t, err)
	r.place(40, 0, 0, 0, 10)
	return r, ev
}

func TestSwipeRow_MeasuresButtonGroups(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")

	left, ok := r.Panel().Panels().LeftWidth()
	require.True(t, ok)
	right, ok := r.Panel().Panels().RightWidth()
	require.True(t, ok)

	assert.Equal(t, 12.0, left)
	assert.Equal(t, 17.0, right)
}

func TestSwipeRow_DragOpensLeft(t *testing.T) {
	clock := &testClock{now: t0}
	r, ev := newTestRow(t, clock, "none")

	r.Panel().DragStart()
	assert.True(t, r.Panel().DragMove(10, 0))
	assert.Equal(t, 10, r.Offset())
	assert.False(t, r.Animating())

	clock.Advance(time.Second)
	out := r.Panel().DragEnd(10, t0)
	assert.Equal(t, swipe.OutcomeOpened, out)
	assert.Equal(t, 12, r.Offset())
	assert.Equal(t, []swipe.Side{swipe.SideLeft}, ev.opens)
}

func TestSwipeRow_ButtonAt(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")

	_, _, ok := r.ButtonAt(0)
	assert.False(t, ok, "closed row has no visible buttons")

	require.True(t, r.Panel().Open(swipe.SideLeft))
	tests := []struct {
		x     int
		index int
		ok    bool
	}{
		{0, 0, true},
		{5, 0, true},
		{6, 1, true},
		{11, 1, true},
		{12, 0, false},
		{-1, 0, false},
	}
	for _, tc := range tests {
		side, i, ok := r.ButtonAt(tc.x)
		assert.Equal(t, tc.ok, ok, "x=%d", tc.x)
		if tc.ok {
			assert.Equal(t, swipe.SideLeft, side)
			assert.Equal(t, tc.index, i, "x=%d", tc.x)
		}
	}

	require.True(t, r.Panel().Open(swipe.SideRight))
	assert.Equal(t, -17, r.Offset())

	side, i, ok := r.ButtonAt(23)
	require.True(t, ok)
	assert.Equal(t, swipe.SideRight, side)
	assert.Equal(t, 0, i)

	_, i, ok = r.ButtonAt(32)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, _, ok = r.ButtonAt(22)
	assert.False(t, ok)
}

func TestSwipeRow_ViewKeepsWidth(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")

	closed := r.View(40, nil)
	assert.Equal(t, 40, lipgloss.Width(closed))
	assert.True(t, strings.HasPrefix(closed, "alice"))

	r.Panel().Open(swipe.SideLeft)
	open := r.View(40, nil)
	assert.Equal(t, 40, lipgloss.Width(open))
	assert.Contains(t, open, "Read")
	assert.Contains(t, open, "Flag")
	assert.NotContains(t, open, "Archive")

	r.Panel().Open(swipe.SideRight)
	open = r.View(40, nil)
	assert.Equal(t, 40, lipgloss.Width(open))
	assert.Contains(t, open, "Archive")
	assert.Contains(t, open, "Delete")
}

func TestSwipeRow_ViewDuringDragShowsPartialPanel(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")

	r.Panel().DragStart()
	require.True(t, r.Panel().DragMove(-9, 0))
	view := r.View(40, nil)

	assert.Equal(t, 40, lipgloss.Width(view))
	assert.True(t, strings.HasSuffix(view, " Delete "), "outer button shows first: %q", view)
	assert.NotContains(t, view, "Archive")
}

func TestSwipeRow_AnimatedSettle(t *testing.T) {
	clock := &testClock{now: t0}
	r, _ := newTestRow(t, clock, "ease")

	require.True(t, r.Panel().Open(swipe.SideLeft))
	assert.True(t, r.Animating())
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, swipe.DefaultSpeed, r.LastTransition().Duration)

	for i := 0; i < 100 && r.Step(styles.FrameInterval); i++ {
	}
	assert.False(t, r.Animating())
	assert.Equal(t, 12, r.Offset())
}

func TestSwipeRow_PressWithAutoClose(t *testing.T) {
	r, ev := newTestRow(t, &testClock{now: t0}, "none")

	require.True(t, r.Panel().Open(swipe.SideRight))
	require.True(t, r.Panel().Press(swipe.SideRight, 1))

	require.Len(t, ev.buttons, 1)
	assert.Equal(t, "delete", ev.buttons[0].Action)
	assert.False(t, r.Panel().State().IsOpen())
	assert.Equal(t, 1, ev.closes)
	assert.Equal(t, 0, r.Offset())
}

func TestSwipeRow_ContainsRespectsClip(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")
	r.place(40, 2, 5, 3, 6)

	assert.True(t, r.contains(swipe.Activation{X: 2, Y: 5}))
	assert.True(t, r.contains(swipe.Activation{X: 41, Y: 5}))
	assert.False(t, r.contains(swipe.Activation{X: 1, Y: 5}))
	assert.False(t, r.contains(swipe.Activation{X: 42, Y: 5}))
	assert.False(t, r.contains(swipe.Activation{X: 5, Y: 6}))

	r.place(40, 0, 8, 3, 6)
	assert.False(t, r.contains(swipe.Activation{X: 5, Y: 8}), "row below the visible band")
}

func TestSwipeRow_SetContentKeepsState(t *testing.T) {
	r, _ := newTestRow(t, &testClock{now: t0}, "none")
	r.Panel().Open(swipe.SideLeft)

	r.SetContent(RowContent{ID: "other", Lines: []string{"a", "b", "c"}})
	assert.Equal(t, "m1", r.ID())
	assert.Equal(t, 3, r.Height())
	assert.True(t, r.Panel().State().IsOpen())
}
