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

import "testing"

func TestIntegerNumberSplitsEachLevelBetweenNonNegativeAndNegative(t *testing.T) {
	t.Parallel()

	table := NewIntegerNumber(8)

	seen := make(map[int64]bool)
	for q := uint(1); q <= 2; q++ {
		bits := q * 8
		n := table.SymbolsAtBits(bits)
		half := n / 2
		nonNeg, neg := 0, 0
		for i := uint32(0); i < n; i++ {
			sym, err := table.SymbolAt(bits, i)
			if err != nil {
				t.Fatalf("bits=%d index=%d: unexpected error: %v", bits, i, err)
			}
			if seen[sym] {
				t.Fatalf("symbol %d emitted twice", sym)
			}
			seen[sym] = true
			if sym >= 0 {
				nonNeg++
			} else {
				neg++
			}
		}
		if uint32(nonNeg) != half || uint32(neg) != half {
			t.Errorf("bits=%d: nonNeg=%d neg=%d, want %d each", bits, nonNeg, neg, half)
		}
	}

	// First level (bits=8) must cover 0..63 and -1..-64 with no gaps.
	for v := int64(0); v < 64; v++ {
		if !seen[v] {
			t.Errorf("missing non-negative value %d", v)
		}
	}
	for v := int64(-64); v < 0; v++ {
		if !seen[v] {
			t.Errorf("missing negative value %d", v)
		}
	}
}

func TestIntegerNumberSecondLevelContinuesFromFirst(t *testing.T) {
	t.Parallel()

	table := NewIntegerNumber(8)

	firstNonNeg, err := table.SymbolAt(16, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstNonNeg != 64 {
		t.Errorf("first non-negative value at level 2 = %d, want 64", firstNonNeg)
	}

	half := table.SymbolsAtBits(16) / 2
	firstNeg, err := table.SymbolAt(16, half)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstNeg != -65 {
		t.Errorf("first negative value at level 2 = %d, want -65", firstNeg)
	}
}
