// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// PROGRESS BAR TESTS
// =============================================================================

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		width   int
		percent float64
		want    string
	}{
		{10, 0, "----------"},
		{10, 100, "##########"},
		{10, 50, "#####-----"},
		{4, 150, "####"},
		{4, -5, "----"},
		{0, 50, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderProgressBar(tt.width, tt.percent), "width=%d percent=%g", tt.width, tt.percent)
	}
}

// =============================================================================
// EASING TESTS
// =============================================================================

func TestEasingFunctionsBounds(t *testing.T) {
	easings := map[string]EasingFunc{
		"linear":   EaseLinear,
		"outCubic": EaseOutCubic,
	}
	for name, f := range easings {
		assert.InDelta(t, 0, f(0), 1e-9, name)
		assert.InDelta(t, 1, f(1), 1e-9, name)
		prev := 0.0
		for i := 1; i <= 10; i++ {
			v := f(float64(i) / 10)
			assert.GreaterOrEqual(t, v, prev, "%s should be monotonic", name)
			prev = v
		}
	}
}

// =============================================================================
// ANIMATOR TESTS
// =============================================================================

func runUntilSettled(t *testing.T, a Animator, maxFrames int) (float64, int) {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		pos, settled := a.Step(FrameInterval)
		if settled {
			return pos, i
		}
	}
	t.Fatalf("animator did not settle within %d frames", maxFrames)
	return 0, 0
}

func TestNewAnimatorKinds(t *testing.T) {
	assert.IsType(t, &TweenAnimator{}, NewAnimator("ease"))
	assert.IsType(t, &TweenAnimator{}, NewAnimator(""))
	assert.IsType(t, &SpringAnimator{}, NewAnimator("Spring"))
	assert.IsType(t, &SnapAnimator{}, NewAnimator("none"))
}

func TestTweenAnimator_ReachesTargetInDuration(t *testing.T) {
	a := NewAnimator("ease")
	a.Jump(0)
	a.Retarget(-20, 300*time.Millisecond)
	assert.False(t, a.Settled())

	pos, frames := runUntilSettled(t, a, 100)
	assert.Equal(t, -20.0, pos)
	// 300ms at 60fps
	assert.InDelta(t, 18, frames, 1)
}

func TestTweenAnimator_MovesMonotonically(t *testing.T) {
	a := &TweenAnimator{Easing: EaseOutCubic}
	a.Jump(10)
	a.Retarget(0, 200*time.Millisecond)

	prev := a.Position()
	for !a.Settled() {
		pos, _ := a.Step(FrameInterval)
		assert.LessOrEqual(t, pos, prev)
		prev = pos
	}
	assert.Equal(t, 0.0, a.Position())
}

func TestTweenAnimator_ZeroDurationJumps(t *testing.T) {
	a := NewAnimator("ease")
	a.Retarget(15, 0)
	assert.True(t, a.Settled())
	assert.Equal(t, 15.0, a.Position())
}

func TestTweenAnimator_RetargetMidFlight(t *testing.T) {
	a := NewAnimator("ease")
	a.Jump(0)
	a.Retarget(20, 300*time.Millisecond)
	for i := 0; i < 5; i++ {
		a.Step(FrameInterval)
	}
	mid := a.Position()
	require.Greater(t, mid, 0.0)

	a.Retarget(0, 300*time.Millisecond)
	pos, _ := a.Step(FrameInterval)
	assert.LessOrEqual(t, pos, mid, "retarget should start from the current position")
}

func TestSpringAnimator_Settles(t *testing.T) {
	a := NewAnimator("spring")
	a.Jump(0)
	a.Retarget(18, 300*time.Millisecond)
	assert.False(t, a.Settled())

	pos, _ := runUntilSettled(t, a, 300)
	assert.Equal(t, 18.0, pos)
	assert.True(t, a.Settled())
}

func TestSpringAnimator_NoOvershootWhenCriticallyDamped(t *testing.T) {
	a := NewAnimator("spring")
	a.Jump(0)
	a.Retarget(-12, 300*time.Millisecond)

	for !a.Settled() {
		pos, _ := a.Step(FrameInterval)
		assert.GreaterOrEqual(t, pos, -12.0-1e-6)
	}
}

func TestSpringAnimator_LargeStepAdvancesSeveralFrames(t *testing.T) {
	one := NewAnimator("spring")
	one.Jump(0)
	one.Retarget(10, 300*time.Millisecond)
	one.Step(FrameInterval)

	three := NewAnimator("spring")
	three.Jump(0)
	three.Retarget(10, 300*time.Millisecond)
	three.Step(3 * FrameInterval)

	assert.Greater(t, three.Position(), one.Position())
}

func TestSpringAnimator_ZeroDurationJumps(t *testing.T) {
	a := NewAnimator("spring")
	a.Retarget(7, 0)
	assert.True(t, a.Settled())
	assert.Equal(t, 7.0, a.Position())
}

func TestSnapAnimator(t *testing.T) {
	a := NewAnimator("none")
	a.Retarget(-9, time.Second)
	pos, settled := a.Step(FrameInterval)
	assert.True(t, settled)
	assert.Equal(t, -9.0, pos)
}

func TestFrameInterval(t *testing.T) {
	assert.True(t, math.Abs(float64(FrameInterval-16666666*time.Nanosecond)) < float64(time.Microsecond))
}
