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

// IntegerTable is a computed table encoding signed integers. It
// shares NaturalTable's per-length symbol count, 2^(q*(alignment-1))
// for a codeword length of q*alignment, but splits each length's
// codewords into two equal halves: the lower half continues the
// running count of non-negative values assigned by shorter lengths,
// the upper half continues the running count of negative values in
// lock step, so after every length exactly as many non-negative as
// negative values have been assigned.
type IntegerTable struct {
	alignment uint
}

// NewIntegerNumber builds an IntegerTable with the given alignment.
// The SDB format only uses alignment 8 (Integer8).
func NewIntegerNumber(alignment uint) *IntegerTable {
	return &IntegerTable{alignment: alignment}
}

func (t *IntegerTable) SymbolsAtBits(bits uint) uint32 {
	if bits == 0 || bits%t.alignment != 0 {
		return 0
	}
	q := bits / t.alignment
	return uint32(1) << (q * (t.alignment - 1))
}

// halfCount returns count(level)/2, the number of non-negative (and,
// symmetrically, negative) values assigned at that level.
func (t *IntegerTable) halfCount(level uint) uint64 {
	return uint64(1) << (level*(t.alignment-1) - 1)
}

// nonNegBase returns the running count of non-negative values
// assigned by all levels shorter than q — equivalently, since the
// split is symmetric, the running count of negative values too.
func (t *IntegerTable) nonNegBase(q uint) uint64 {
	var base uint64
	for e := uint(1); e < q; e++ {
		base += t.halfCount(e)
	}
	return base
}

func (t *IntegerTable) SymbolAt(bits uint, index uint32) (int64, error) {
	if bits == 0 || bits%t.alignment != 0 {
		return 0, InvalidTableInputError{Bits: bits, Index: index}
	}
	q := bits / t.alignment
	half := t.halfCount(q)
	base := t.nonNegBase(q)

	if uint64(index) < half {
		return int64(base) + int64(index), nil
	}
	offset := uint64(index) - half
	return -(int64(base) + int64(offset) + 1), nil
}
