// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import "fmt"

func contractViolation(format string, args ...any) {
	onContractViolation(fmt.Sprintf(format, args...))
}
