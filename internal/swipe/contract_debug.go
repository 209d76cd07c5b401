// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build swipedebug

package swipe

func onContractViolation(msg string) {
	panic("swipe: contract violation: " + msg)
}
