// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import "time"

// Transition is what a Renderer displays: where the foreground surface sits
// and how long it takes to get there.
type Transition struct {
	Offset   float64
	Duration time.Duration
}

// Live reports whether the transition tracks a drag (no animation).
func (t Transition) Live() bool {
	return t.Duration == 0
}

// Emit maps a state to the Renderer's input. It is the identity today; it
// exists so Renderers see one input regardless of how the offset was derived.
func Emit(s SwipeState) Transition {
	return Transition{Offset: s.OffsetLeft, Duration: s.Duration}
}

// Renderer paints the foreground surface.
type Renderer interface {
	Render(Transition)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Transition)

// Render calls f(t).
func (f RendererFunc) Render(t Transition) {
	f(t)
}
