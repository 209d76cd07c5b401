// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package swipe implements the gesture interpretation and open/close state
machine behind a swipeable reveal panel.

A panel is a foreground surface that can be dragged sideways to expose one of
two action groups (left or right). The package decides, for every drag sample,
whether the gesture is a horizontal swipe or an incidental vertical scroll, how
far the surface may travel, and whether a finished gesture opens or closes the
panel. Everything visual is delegated to a Renderer.

# Pipeline

	DragSource -> Classify -> Machine -> Emit -> Renderer
	                           ^
	ActivationBus (outside) ---+

  - Classify (classifier.go): pure accept/reject decision for one move sample.
  - Machine (machine.go): committed Closed/Open state, drag sessions, the
    distance-ratio and flick heuristics, the one-gesture dead zone.
  - Emit (transition.go): the Renderer's stable (offset, duration) input.
  - Panel (panel.go): owner of one Machine; the DragSource contract, buttons,
    callbacks and outside-activation subscription.

# Concurrency

A Panel and its Machine have a single writer: the host event loop. Nothing in
this package blocks or spawns goroutines. Hosts with several panels give each
one its own Panel and fan outside activations out through one ActivationBus.

# Contract violations

Out-of-order events (a move or end without a start) are programming errors.
Built with the swipedebug tag they panic; otherwise they are logged and the
event is dropped.
*/
package swipe
