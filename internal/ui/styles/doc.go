// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for swipe.

This package defines the color palette, the lipgloss theme used by every
component, and the animators that move a row between its rest offsets. All
colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Purple - Primary accent and selections
  - Cyan - Brand color, primary buttons
  - Emerald - Success states, flagged items
  - Amber - Warnings, archive buttons
  - Rose - Errors, destructive buttons

# Theme System (theme.go)

	theme := styles.NewTheme(cfg.UI.Theme)
	archive := theme.ButtonStyle("warning").Render("Archive")

Button themes are "default", "primary", "success", "warning" and "danger".

# Animation System (animations.go)

Row offsets settle through an Animator stepped at FPS:

	a := styles.NewAnimator("spring") // or "ease", "none"
	a.Retarget(-18, 300*time.Millisecond)
	pos, settled := a.Step(styles.FrameInterval)

TweenAnimator follows an easing curve for exactly the requested duration.
SpringAnimator uses a critically damped harmonica spring whose stiffness is
derived from the duration.
*/
package styles
