// Copyright (c) 2026 The go-sdb Authors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-sdb.
//
// go-sdb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-sdb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-sdb.  If not, see <https://www.gnu.org/licenses/>.

// Package huffman implements the bit-level canonical Huffman decoding
// engine used by the sdb package: a least-significant-bit-first bit
// stream, a table abstraction over canonical Huffman codes, several
// computed table families that derive their symbols from a formula
// instead of storing them, and a codec that reads a stored table out
// of the bit stream.
package huffman

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnexpectedEndOfFile is returned when the byte source is exhausted
// before the bit stream can satisfy a read.
var ErrUnexpectedEndOfFile = errors.New("huffman: unexpected end of file")

// IOError wraps a byte-source failure that is not end-of-file.
type IOError struct {
	Err error
}

func (e IOError) Error() string { return fmt.Sprintf("huffman: io error: %v", e.Err) }
func (e IOError) Unwrap() error { return e.Err }

// InvalidRangeError is returned by a ranged table constructor when
// max < min. It is a programming error, not a format error.
type InvalidRangeError struct {
	Min, Max int64
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("huffman: invalid range [%d, %d]", e.Min, e.Max)
}

// InvalidTableInputError is returned when a symbol is requested at a
// (bits, index) pair outside a table's declared support. Like
// InvalidRangeError this indicates an implementation bug: callers are
// expected to consult SymbolsAtBits before calling SymbolAt.
type InvalidTableInputError struct {
	Bits  uint
	Index uint32
}

func (e InvalidTableInputError) Error() string {
	return fmt.Sprintf("huffman: invalid table input (bits=%d, index=%d)", e.Bits, e.Index)
}

// ioError wraps an underlying byte-source error with decoding context.
func ioError(stage string, err error) error {
	return fmt.Errorf("huffman: %s: %w", stage, err)
}

// classifyReadErr turns a raw ByteSource error into the taxonomy's
// ErrUnexpectedEndOfFile / IOError distinction.
func classifyReadErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrUnexpectedEndOfFile
	}
	return IOError{Err: err}
}
