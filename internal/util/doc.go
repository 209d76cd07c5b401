// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the swipe application.
//
// # Key Functions
//
// Cell Width (go-runewidth):
//   - StringWidth, TruncateWidth, PadRight: measure and fit plain text
//   - CutWidth: take a window of columns, used to slide row content
//
// Type Conversion:
//   - IntToString, FloatToStringPrec, FormatMillis
//
// File Operations:
//   - AtomicWriteFileWithDir: Crash-safe file writing with fsync
//
// # Usage
//
//	// Slide a row 4 cells to the left inside a 40 cell viewport
//	line := util.CutWidth(text, 4, 40)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFileWithDir(path, data, 0644, 0755)
package util
