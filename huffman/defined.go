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

// DefinedTable is a stored canonical table: an explicit, ordered list
// of symbols plus per-level offsets into that list, built from a
// list of level lengths read off the stream (see ReadTable). Lookups
// are O(1).
type DefinedTable[S any] struct {
	symbols []S
	// counts[i] is the number of symbols with bit-length i, including
	// the degenerate i==0 level (at most one symbol, consuming zero
	// bits).
	counts []uint32
	// starts[i] is the cumulative symbol count before bit-length i.
	starts []int
}

func newDefinedTable[S any](counts []uint32) *DefinedTable[S] {
	starts := make([]int, len(counts))
	total := 0
	for i, c := range counts {
		starts[i] = total
		total += int(c)
	}
	return &DefinedTable[S]{
		symbols: make([]S, 0, total),
		counts:  counts,
		starts:  starts,
	}
}

func (t *DefinedTable[S]) SymbolsAtBits(bits uint) uint32 {
	if int(bits) >= len(t.counts) {
		return 0
	}
	return t.counts[bits]
}

func (t *DefinedTable[S]) SymbolAt(bits uint, index uint32) (S, error) {
	var zero S
	if int(bits) >= len(t.counts) || index >= t.counts[bits] {
		return zero, InvalidTableInputError{Bits: bits, Index: index}
	}
	return t.symbols[t.starts[bits]+int(index)], nil
}
