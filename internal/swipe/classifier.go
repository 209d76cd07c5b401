// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import "math"

// RejectReason explains why a move sample was not treated as a swipe.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectDisabled
	RejectNoPanel
	RejectOverDrag
	RejectTooShort
	RejectVertical
	RejectDeadZone
	RejectNoSession
)

// String returns the display string for the reason
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "accepted"
	case RejectDisabled:
		return "disabled"
	case RejectNoPanel:
		return "no panel"
	case RejectOverDrag:
		return "over drag"
	case RejectTooShort:
		return "too short"
	case RejectVertical:
		return "vertical scroll"
	case RejectDeadZone:
		return "closing gesture"
	case RejectNoSession:
		return "no gesture"
	default:
		return "unknown"
	}
}

// Decision is the classifier's verdict for one move sample.
type Decision struct {
	Accepted bool
	// Offset is the live offset to display, clamped to the slack bounds.
	Offset float64
	Reason RejectReason
}

func reject(reason RejectReason) Decision {
	return Decision{Reason: reason}
}

// Classify decides whether a move sample (offsets relative to the gesture
// origin) is a horizontal swipe. It must run on every sample.
func Classify(state SwipeState, cfg Config, panels PanelSet, offsetX, offsetY float64) Decision {
	if cfg.Disabled {
		return reject(RejectDisabled)
	}

	// Travel limits toward each side.
	if offsetX > 0 {
		w, ok := panels.LeftWidth()
		if !ok {
			return reject(RejectNoPanel)
		}
		if state.OffsetLeft >= w+cfg.Slack {
			return reject(RejectOverDrag)
		}
	}
	if offsetX < 0 {
		w, ok := panels.RightWidth()
		if !ok {
			return reject(RejectNoPanel)
		}
		if state.OffsetLeft <= -w-cfg.Slack {
			return reject(RejectOverDrag)
		}
	}

	// Scroll versus swipe.
	dx := math.Abs(offsetX)
	dy := math.Abs(offsetY)
	if dx < MinSwipeDistance {
		return reject(RejectTooShort)
	}
	if dy >= MaxVerticalRatio*dx {
		return reject(RejectVertical)
	}

	return Decision{
		Accepted: true,
		Offset:   panels.Clamp(offsetX, cfg.Slack),
	}
}
