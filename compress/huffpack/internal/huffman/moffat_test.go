// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "sort"

// moffatCodeLens implements In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
// w must be sorted in non-increasing order; it is replaced by code lengths.
func moffatCodeLens(w []uint64) {
	// phase 1
	n := len(w)
	if n == 0 {
		return
	}
	if n == 1 {
		w[0] = 1
		return
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := 0
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth depth
		for ; root < n && w[root] == uint64(depth); root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = uint64(depth)
			next = next + 1
		}
		avail = 2 * used
		depth++
		used = 0
	}
}

// optimalCost returns the minimum total number of bits any prefix code can
// spend on the symbols counted in freq.
func optimalCost(freq *FrequencyTable) (cost uint64) {
	var counts []uint64
	for _, v := range freq {
		if v != 0 {
			counts = append(counts, v)
		}
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] > counts[j] })
	w := append([]uint64(nil), counts...)
	moffatCodeLens(w)
	for i := range counts {
		cost += counts[i] * w[i]
	}
	return cost
}
