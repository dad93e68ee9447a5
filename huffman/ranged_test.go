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

import (
	"errors"
	"testing"
)

// collectRangedIntegerSymbols walks every (bits, index) a table declares support
// for and returns the emitted symbols alongside the bit-length used.
func collectRangedIntegerSymbols(t *testing.T, table *RangedIntegerTable) map[int64]uint {
	t.Helper()
	seen := make(map[int64]uint)
	for bits := uint(0); bits <= 64; bits++ {
		n := table.SymbolsAtBits(bits)
		for i := uint32(0); i < n; i++ {
			sym, err := table.SymbolAt(bits, i)
			if err != nil {
				t.Fatalf("SymbolAt(%d, %d): unexpected error: %v", bits, i, err)
			}
			if _, dup := seen[sym]; dup {
				t.Fatalf("symbol %d emitted twice", sym)
			}
			seen[sym] = bits
		}
	}
	return seen
}

func TestRangedIntegerCoversExactRangeWithCanonicalSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		min, max int64
	}{
		{0, 0},   // P=1
		{0, 1},   // P=2, power of two
		{0, 2},   // P=3
		{5, 12},  // P=8, power of two
		{1, 10},  // P=10
		{-3, 4},  // P=8 with negative min
		{0, 675}, // language code domain
	}

	for _, c := range cases {
		table, err := NewRangedInteger(c.min, c.max)
		if err != nil {
			t.Fatalf("NewRangedInteger(%d, %d): unexpected error: %v", c.min, c.max, err)
		}

		p := uint64(c.max-c.min) + 1
		seen := collectRangedIntegerSymbols(t, table)
		if uint64(len(seen)) != p {
			t.Fatalf("range [%d,%d]: got %d symbols, want %d", c.min, c.max, len(seen), p)
		}
		for v := c.min; v <= c.max; v++ {
			if _, ok := seen[v]; !ok {
				t.Errorf("range [%d,%d]: value %d never emitted", c.min, c.max, v)
			}
		}

		var b uint
		for (uint64(1) << b) < p {
			b++
		}
		l := (uint64(1) << b) - p
		for v, bits := range seen {
			_ = v
			if bits != b && bits != b-1 {
				t.Errorf("range [%d,%d]: bit-length %d outside {%d,%d}", c.min, c.max, bits, b-1, b)
			}
		}
		shortCount := uint64(0)
		for _, bits := range seen {
			if l > 0 && bits == b-1 {
				shortCount++
			}
		}
		if shortCount != l {
			t.Errorf("range [%d,%d]: got %d short codewords, want %d", c.min, c.max, shortCount, l)
		}
	}
}

func TestRangedIntegerRejectsInvertedRange(t *testing.T) {
	t.Parallel()

	_, err := NewRangedInteger(5, 4)
	var rangeErr InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("got %v, want InvalidRangeError", err)
	}
}

func TestRangedIndexProducesTypedSymbols(t *testing.T) {
	t.Parallel()

	type alphabetIndex uint32

	table, err := NewRangedIndex[alphabetIndex](2, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[alphabetIndex]bool)
	for bits := uint(0); bits <= 8; bits++ {
		n := table.SymbolsAtBits(bits)
		for i := uint32(0); i < n; i++ {
			sym, err := table.SymbolAt(bits, i)
			if err != nil {
				t.Fatalf("SymbolAt(%d,%d): %v", bits, i, err)
			}
			seen[sym] = true
		}
	}
	if len(seen) != 8 {
		t.Fatalf("got %d distinct symbols, want 8", len(seen))
	}
	for v := alphabetIndex(2); v <= 9; v++ {
		if !seen[v] {
			t.Errorf("value %d never emitted", v)
		}
	}
}

func TestRangedDegenerateSingleSymbolUsesZeroBits(t *testing.T) {
	t.Parallel()

	table, err := NewRangedInteger(7, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := table.SymbolsAtBits(0); n != 1 {
		t.Fatalf("SymbolsAtBits(0) = %d, want 1", n)
	}
	sym, err := table.SymbolAt(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym != 7 {
		t.Errorf("got %d, want 7", sym)
	}
}
