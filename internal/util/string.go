// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width helpers for plain (unstyled) text. Everything here counts terminal
// cells via go-runewidth, so CJK and emoji take two columns.

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates s to at most maxWidth cells, ending in "..." when
// there is room for it.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to exactly width cells, truncating first if it
// is too wide.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	return runewidth.FillRight(s, width)
}

// CutWidth returns the cells [start, start+width) of s, padded with spaces to
// width. A wide rune split by either edge is replaced by spaces.
func CutWidth(s string, start, width int) string {
	if width <= 0 {
		return ""
	}
	if start < 0 {
		pad := -start
		if pad >= width {
			return strings.Repeat(" ", width)
		}
		return strings.Repeat(" ", pad) + CutWidth(s, 0, width-pad)
	}

	var sb strings.Builder
	col, out := 0, 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		end := start + width
		switch {
		case col+w <= start:
			// left of the window
		case col < start:
			// straddles the left edge
			n := col + w - start
			if n > end-start {
				n = end - start
			}
			sb.WriteString(strings.Repeat(" ", n))
			out += n
		case col+w <= end:
			sb.WriteRune(r)
			out += w
		case col < end:
			n := end - col
			sb.WriteString(strings.Repeat(" ", n))
			out += n
		}
		col += w
		if col >= end {
			break
		}
	}
	if out < width {
		sb.WriteString(strings.Repeat(" ", width-out))
	}
	return sb.String()
}
