// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package cpu reports how much parallelism huffpack may use.
package cpu

// Workers is the number of goroutines used to count frequencies of large
// inputs. The value is determined at package initialization time.
var (
	Workers = detectWorkers()
)
