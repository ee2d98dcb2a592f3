// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "sync"

// FrequencyTable counts symbol occurrences, indexed by byte value.
type FrequencyTable [256]uint64

// CountFrequencies counts every byte of data in a single pass.
func CountFrequencies(data []byte) *FrequencyTable {
	f := &FrequencyTable{}
	f.add(data)
	return f
}

func (f *FrequencyTable) add(data []byte) {
	for _, b := range data {
		f[b]++
	}
}

// CountFrequenciesParallel splits data into up to workers contiguous chunks,
// counts them concurrently and merges the partial tables.
// The result is identical to CountFrequencies.
func CountFrequenciesParallel(data []byte, workers int) *FrequencyTable {
	if workers < 2 || len(data) < 2*workers {
		return CountFrequencies(data)
	}
	chunk := (len(data) + workers - 1) / workers
	parts := make([]FrequencyTable, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		if start >= len(data) {
			break
		}
		end := start + chunk
		if end > len(data) {
			end = len(data)
		}
		wg.Add(1)
		go func(part *FrequencyTable, data []byte) {
			defer wg.Done()
			part.add(data)
		}(&parts[i], data[start:end])
	}
	wg.Wait()

	f := &FrequencyTable{}
	for i := range parts {
		f.Merge(&parts[i])
	}
	return f
}

// Merge adds the counts of other into f.
func (f *FrequencyTable) Merge(other *FrequencyTable) {
	for i, v := range other {
		f[i] += v
	}
}

// Distinct returns the number of symbols with a non-zero count.
func (f *FrequencyTable) Distinct() (k int) {
	for _, v := range f {
		if v != 0 {
			k++
		}
	}
	return k
}

// Total returns the sum of all counts.
func (f *FrequencyTable) Total() (n uint64) {
	for _, v := range f {
		n += v
	}
	return n
}
