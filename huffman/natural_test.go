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

func TestNaturalNumberSymbolsAreUniqueAndContiguousPerLevel(t *testing.T) {
	t.Parallel()

	for _, alignment := range []uint{2, 3, 4, 8} {
		table := NewNaturalNumber[uint64](alignment)

		seen := make(map[uint64]bool)
		for q := uint(1); q <= 4; q++ {
			bits := q * alignment
			n := table.SymbolsAtBits(bits)
			wantCount := uint32(1) << (q * (alignment - 1))
			if n != wantCount {
				t.Fatalf("alignment=%d bits=%d: SymbolsAtBits=%d, want %d", alignment, bits, n, wantCount)
			}
			for i := uint32(0); i < n; i++ {
				sym, err := table.SymbolAt(bits, i)
				if err != nil {
					t.Fatalf("alignment=%d bits=%d index=%d: unexpected error: %v", alignment, bits, i, err)
				}
				if seen[sym] {
					t.Fatalf("alignment=%d: symbol %d emitted twice", alignment, sym)
				}
				seen[sym] = true
			}
		}

		// The total emitted set across levels 1..4 must be exactly
		// the first N natural numbers, with no gaps.
		maxSeen := uint64(0)
		for v := range seen {
			if v > maxSeen {
				maxSeen = v
			}
		}
		for v := uint64(0); v <= maxSeen; v++ {
			if !seen[v] {
				t.Errorf("alignment=%d: value %d skipped", alignment, v)
			}
		}
	}
}

func TestNaturalNumberRejectsUnalignedBits(t *testing.T) {
	t.Parallel()

	table := NewNaturalNumber[uint64](8)
	if n := table.SymbolsAtBits(5); n != 0 {
		t.Errorf("SymbolsAtBits(5) = %d, want 0", n)
	}
	if _, err := table.SymbolAt(5, 0); err == nil {
		t.Error("expected error for unaligned bit-length")
	}
}

func TestNaturalIndexIsComputationallyIdenticalToNaturalNumber(t *testing.T) {
	t.Parallel()

	type symbolArrayIndex uint32

	numbers := NewNaturalNumber[uint64](8)
	indices := NewNaturalIndex[symbolArrayIndex](8)

	for bits := uint(8); bits <= 16; bits += 8 {
		if numbers.SymbolsAtBits(bits) != indices.SymbolsAtBits(bits) {
			t.Fatalf("bits=%d: symbol counts differ", bits)
		}
		n, err := numbers.SymbolAt(bits, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		idx, err := indices.SymbolAt(bits, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if symbolArrayIndex(n) != idx {
			t.Errorf("bits=%d: number=%d index=%d", bits, n, idx)
		}
	}
}
