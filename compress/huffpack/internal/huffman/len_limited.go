// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "sort"

// LimitLengths caps the code lengths at maxLen, keeping the code complete.
// Symbols are reassigned lengths in descending frequency order (ascending
// symbol on ties), so more frequent symbols never get longer codes.
// maxLen must leave room for every symbol (1<<maxLen >= symbol count).
// It reports whether any length changed.
func LimitLengths(freq *FrequencyTable, lengths *[256]uint8, maxLen int) bool {
	longest := 0
	for _, l := range lengths {
		if int(l) > longest {
			longest = int(l)
		}
	}
	if longest <= maxLen {
		return false
	}

	lenCounts := make([]uint64, longest+1)
	for _, l := range lengths {
		if l != 0 {
			lenCounts[l]++
		}
	}
	enforceMaxLen(lenCounts, maxLen)

	symbols := make([]int, 0, 256)
	for sym, l := range lengths {
		if l != 0 {
			symbols = append(symbols, sym)
		}
	}
	sort.Slice(symbols, func(i, j int) bool {
		a, b := symbols[i], symbols[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return a < b
	})
	idx := 0
	for length := 1; length <= maxLen; length++ {
		for j := uint64(0); j < lenCounts[length]; j++ {
			lengths[symbols[idx]] = uint8(length)
			idx++
		}
	}
	return true
}

func enforceMaxLen(lenCounts []uint64, maxLen int) {
	// move all oversize length to the maxLen
	for i := maxLen + 1; i < len(lenCounts); i++ {
		lenCounts[maxLen] += lenCounts[i]
		lenCounts[i] = 0
	}

	// Kraft-McMillan: sum(count[l] * 2^(maxLen-l)) must equal 2^maxLen.
	// Removing a leaf at maxLen lowers the sum by one; splitting a shorter
	// leaf into two one level deeper keeps it unchanged.
	total := uint64(0)
	for i := 1; i <= maxLen; i++ {
		total += lenCounts[i] << (maxLen - i)
	}
	for total != 1<<maxLen {
		lenCounts[maxLen]--
		for i := maxLen - 1; i > 0; i-- {
			if lenCounts[i] != 0 {
				lenCounts[i]--
				lenCounts[i+1] += 2
				break
			}
		}
		total--
	}
}
