// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffpack

import (
	"os"

	"github.com/pkg/errors"
)

// CompressFile compresses the file at src into a container at dst.
func CompressFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, _, err := Compress(data)
	if err != nil {
		return errors.WithMessage(err, src)
	}
	return os.WriteFile(dst, out, 0o644)
}

// DecompressFile restores the container at src into dst.
func DecompressFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := Decompress(data)
	if err != nil {
		return errors.WithMessage(err, src)
	}
	return os.WriteFile(dst, out, 0o644)
}
