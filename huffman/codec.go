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

package huffman

import "fmt"

// BaseReader reads the first symbol of a DefinedTable level. It is
// typically a small closure over one of the reader's canonical
// auxiliary tables (e.g. Natural8) plus a value transformation (turn
// a natural number into a Unicode scalar, say).
type BaseReader[S any] func(bs *BitStream) (S, error)

// DiffReader reads a subsequent symbol of a DefinedTable level, given
// the previous symbol at that level. Canonical ordering means
// subsequent symbols are typically encoded as a strictly positive
// delta from the previous one.
type DiffReader[S any] func(bs *BitStream, previous S) (S, error)

// ReadTable reads a DefinedTable[S] from bs: first the level-length
// sequence (via a sequence of adaptively ranged tables), then, for
// each non-empty level, its first symbol via base and any remaining
// symbols via diff. Any reader error aborts construction.
func ReadTable[S any](bs *BitStream, base BaseReader[S], diff DiffReader[S]) (*DefinedTable[S], error) {
	levelLengths, err := readLevelLengths(bs)
	if err != nil {
		return nil, fmt.Errorf("read level lengths: %w", err)
	}

	table := newDefinedTable[S](levelLengths)
	for _, length := range levelLengths {
		if length == 0 {
			continue
		}

		first, err := base(bs)
		if err != nil {
			return nil, fmt.Errorf("read base symbol: %w", err)
		}
		table.symbols = append(table.symbols, first)
		previous := first

		for i := uint32(1); i < length; i++ {
			sym, err := diff(bs, previous)
			if err != nil {
				return nil, fmt.Errorf("read diff symbol: %w", err)
			}
			table.symbols = append(table.symbols, sym)
			previous = sym
		}
	}

	return table, nil
}

// readLevelLengths reads the adaptive level-length sequence: starting
// with remaining=1 unused codeword at the previous length, each step
// reads how many of the up-to-2x-remaining codespace at the current
// length are used, narrowing the next step's range accordingly.
func readLevelLengths(bs *BitStream) ([]uint32, error) {
	var lengths []uint32
	remaining := int64(1)
	for remaining != 0 {
		rangeTable, err := NewRangedInteger(0, remaining)
		if err != nil {
			return nil, err
		}
		length, err := ReadSymbol(bs, rangeTable)
		if err != nil {
			return nil, err
		}
		lengths = append(lengths, uint32(length))
		remaining = (remaining - length) * 2
	}
	return lengths, nil
}
