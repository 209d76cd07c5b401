// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate of settle animations.
const FPS = 60

// FrameInterval is the time between animation frames.
var FrameInterval = time.Second / FPS

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// ProgressBar characters for the drag threshold meter.
var (
	ProgressFull    = "#"
	ProgressEmpty   = "-"
	ProgressPartial = []string{".", ":", "+", "#", "#", "#", "#"}
)

// RenderProgressBar creates a progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filledWidth := float64(width) * percent / 100
	fullBlocks := int(filledWidth)
	partialIndex := int((filledWidth - float64(fullBlocks)) * float64(len(ProgressPartial)))

	var sb strings.Builder
	sb.Grow(width)

	for i := 0; i < fullBlocks && i < width; i++ {
		sb.WriteString(ProgressFull)
	}

	if fullBlocks < width && partialIndex > 0 {
		sb.WriteString(ProgressPartial[partialIndex-1])
		fullBlocks++
	}

	for i := fullBlocks; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}

	return sb.String()
}

// =============================================================================
// EASING
// =============================================================================

// EasingFunc is a function that maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// =============================================================================
// OFFSET ANIMATORS
// =============================================================================

// Animator moves a horizontal offset toward a target one frame at a time.
type Animator interface {
	// Retarget starts a new animation from the current position to target.
	// A zero duration jumps straight to target.
	Retarget(target float64, d time.Duration)
	// Jump places the animator at pos with no motion.
	Jump(pos float64)
	// Step advances the animation by dt and reports whether it has settled.
	Step(dt time.Duration) (pos float64, settled bool)
	// Position returns the current offset.
	Position() float64
	// Settled reports whether the animator is at rest on its target.
	Settled() bool
}

// NewAnimator returns the animator for kind: "ease", "spring" or "none".
func NewAnimator(kind string) Animator {
	switch strings.ToLower(kind) {
	case "spring":
		return &SpringAnimator{}
	case "none":
		return &SnapAnimator{}
	default:
		return &TweenAnimator{Easing: EaseOutCubic}
	}
}

// TweenAnimator interpolates along an easing curve over a fixed duration.
type TweenAnimator struct {
	Easing EasingFunc

	from, to float64
	pos      float64
	duration time.Duration
	elapsed  time.Duration
}

func (a *TweenAnimator) Retarget(target float64, d time.Duration) {
	a.from = a.pos
	a.to = target
	a.duration = d
	a.elapsed = 0
	if d <= 0 {
		a.pos = target
	}
}

func (a *TweenAnimator) Jump(pos float64) {
	a.from, a.to, a.pos = pos, pos, pos
	a.duration, a.elapsed = 0, 0
}

func (a *TweenAnimator) Step(dt time.Duration) (float64, bool) {
	if a.Settled() {
		a.pos = a.to
		return a.pos, true
	}
	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.pos = a.to
		return a.pos, true
	}
	ease := a.Easing
	if ease == nil {
		ease = EaseLinear
	}
	p := ease(float64(a.elapsed) / float64(a.duration))
	a.pos = a.from + (a.to-a.from)*p
	return a.pos, false
}

func (a *TweenAnimator) Position() float64 { return a.pos }

func (a *TweenAnimator) Settled() bool {
	return a.duration <= 0 || a.elapsed >= a.duration
}

// springRestEpsilon is how close position and velocity must be to rest
// before the spring snaps onto its target.
const springRestEpsilon = 0.01

// SpringAnimator drives the offset with a damped harmonica spring. The
// requested duration sets the spring's stiffness; the spring settles in
// roughly that time.
type SpringAnimator struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

func (a *SpringAnimator) Retarget(target float64, d time.Duration) {
	a.target = target
	if d <= 0 {
		a.Jump(target)
		return
	}
	// A critically damped spring is within ~1% of rest after about 6.6/omega.
	omega := 6.6 / d.Seconds()
	a.spring = harmonica.NewSpring(harmonica.FPS(FPS), omega, 1.0)
	a.active = true
}

func (a *SpringAnimator) Jump(pos float64) {
	a.pos, a.vel, a.target = pos, 0, pos
	a.active = false
}

func (a *SpringAnimator) Step(dt time.Duration) (float64, bool) {
	if !a.active {
		return a.pos, true
	}
	frames := int(math.Ceil(float64(dt) / float64(FrameInterval)))
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	}
	if math.Abs(a.pos-a.target) < springRestEpsilon && math.Abs(a.vel) < springRestEpsilon {
		a.Jump(a.target)
		return a.pos, true
	}
	return a.pos, false
}

func (a *SpringAnimator) Position() float64 { return a.pos }

func (a *SpringAnimator) Settled() bool { return !a.active }

// SnapAnimator jumps to every target immediately.
type SnapAnimator struct {
	pos float64
}

func (a *SnapAnimator) Retarget(target float64, _ time.Duration) { a.pos = target }
func (a *SnapAnimator) Jump(pos float64)                        { a.pos = pos }
func (a *SnapAnimator) Step(time.Duration) (float64, bool)      { return a.pos, true }
func (a *SnapAnimator) Position() float64                       { return a.pos }
func (a *SnapAnimator) Settled() bool                           { return true }
