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

package sdb

import (
	"errors"
	"fmt"
)

// ErrNotImplemented indicates a format path this reader does not
// support: currently only a file declaring zero symbol arrays, for
// which the on-disk layout of downstream sections is undefined.
var ErrNotImplemented = errors.New("sdb: not implemented: zero symbol arrays")

// UnexpectedByteError indicates a magic-byte mismatch at a fixed
// preamble offset.
type UnexpectedByteError struct {
	Pos      int
	Expected byte
	Actual   byte
}

func (e UnexpectedByteError) Error() string {
	return fmt.Sprintf("sdb: unexpected byte at offset %d: expected %#02x, got %#02x", e.Pos, e.Expected, e.Actual)
}

// FormatViolationError indicates the stream is structurally invalid
// in a way the bit-level decoder cannot otherwise express: a
// correlation length at or beyond the alphabet count, a non-positive
// acceptation group length, or a correlation array referencing an
// alphabet absent from the correlation it is being merged into.
type FormatViolationError struct {
	Stage  string
	Detail string
}

func (e FormatViolationError) Error() string {
	return fmt.Sprintf("sdb: format violation at %s: %s", e.Stage, e.Detail)
}

// InvalidCodepointError indicates a decoded natural number does not
// name a valid Unicode scalar value.
type InvalidCodepointError struct {
	Value uint64
}

func (e InvalidCodepointError) Error() string {
	return fmt.Sprintf("sdb: invalid codepoint: %d", e.Value)
}

func wrap(stage string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("sdb: %s: %w", stage, err)
}
