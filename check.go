// Package huffpack provides a Huffman prefix-code compressor for Go
// applications. The codec lives in compress/huffpack.
package huffpack

import "github.com/txtcompress/huffpack/internal/cpu"

// Parallel reports whether frequency counting of large inputs is spread
// over several goroutines on this machine.
func Parallel() bool {
	return cpu.Workers > 1
}
