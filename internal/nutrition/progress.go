// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package nutrition

import "math"

// Progress returns consumed as a fraction of goal, clamped to [0, 1]. A goal of
// zero or less has no progress.
func Progress(consumed int, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return min(max(float64(consumed)/float64(goal), 0), 1)
}

// Percent returns p as a whole percentage.
func Percent(p float64) int {
	return int(math.Round(p * 100))
}
