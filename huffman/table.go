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

// Table is the capability interface every Huffman table family
// implements, whether its symbols are computed by formula or stored
// explicitly. For a canonical code, codewords of a given bit-length
// occupy a contiguous numeric range; SymbolsAtBits reports how many
// symbols occupy that range and SymbolAt returns the one at a given
// position within it.
type Table[S any] interface {
	// SymbolsAtBits returns the number of symbols whose codeword
	// length is exactly bits.
	SymbolsAtBits(bits uint) uint32

	// SymbolAt returns the symbol at the given bit-length and
	// intra-level index. index must be in [0, SymbolsAtBits(bits)).
	SymbolAt(bits uint, index uint32) (S, error)
}

// ReadSymbol decodes a single symbol from bs using table. If the
// table has a symbol of length 0 it is a degenerate single-symbol
// alphabet and is returned without consuming any bits. Otherwise this
// walks the canonical code level by level: each level's codewords
// occupy a contiguous range starting where the previous level's
// unused codespace, doubled, begins.
func ReadSymbol[S any](bs *BitStream, table Table[S]) (S, error) {
	var zero S

	if table.SymbolsAtBits(0) > 0 {
		return table.SymbolAt(0, 0)
	}

	var value, base uint32
	bits := uint(1)
	for {
		value <<= 1
		bit, err := bs.ReadBit()
		if err != nil {
			return zero, err
		}
		value |= uint32(bit)

		base <<= 1
		level := table.SymbolsAtBits(bits)
		local := value - base
		if local < level {
			return table.SymbolAt(bits, local)
		}

		base += level
		bits++
	}
}
