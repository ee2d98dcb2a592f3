// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package cpu

import "runtime"

// maxWorkers bounds the goroutines used for one input; more than this does
// not pay off for a memory-bound counting pass.
const maxWorkers = 8

func detectWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n > maxWorkers {
		n = maxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}
