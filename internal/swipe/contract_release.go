// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !swipedebug

package swipe

import "log"

func onContractViolation(msg string) {
	log.Printf("SWIPE_CONTRACT | violation=%q action=dropped", msg)
}
