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
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// correlationCacheSize bounds the memoized CompleteCorrelation results
// held per Database; it is sized generously rather than tuned, since a
// full decode rarely addresses more than a few thousand distinct
// correlation arrays in one session.
const correlationCacheSize = 4096

// Database is the immutable aggregate produced by Reader.Read: every
// entity decoded from one SDB stream, addressed by the dense indices
// described in the data model. It owns no reference back to the
// reader or the underlying byte source.
type Database struct {
	SymbolArrays      []SymbolArray
	Languages         []Language
	AlphabetCount     uint32
	Conversions       []Conversion
	MaxConcept        Concept
	Correlations      []Correlation
	CorrelationArrays []CorrelationArray
	Acceptations      []Acceptation
	Definitions       map[Concept]Definition

	correlationCache *lru.Cache[CorrelationArrayIndex, map[Alphabet]string]
}

func newDatabase() *Database {
	cache, err := lru.New[CorrelationArrayIndex, map[Alphabet]string](correlationCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// correlationCacheSize never is.
		panic(fmt.Sprintf("sdb: building correlation cache: %v", err))
	}
	return &Database{
		Definitions:      make(map[Concept]Definition),
		correlationCache: cache,
	}
}

// CompleteCorrelation returns, for correlation-array index i, the map
// from Alphabet to the concatenated string obtained by iterating the
// array in order: the accumulator is seeded from the first referenced
// correlation's values, then each subsequent correlation's values are
// appended to the accumulator entry for the same alphabet. An empty
// array yields an empty map. Results are memoized for the lifetime of
// the Database; repeated calls with the same index are idempotent and
// touch no external state.
func (d *Database) CompleteCorrelation(i CorrelationArrayIndex) (map[Alphabet]string, error) {
	if cached, ok := d.correlationCache.Get(i); ok {
		return cached, nil
	}

	if int(i) >= len(d.CorrelationArrays) {
		return nil, FormatViolationError{Stage: "complete-correlation", Detail: fmt.Sprintf("correlation array index %d out of range", i)}
	}

	array := d.CorrelationArrays[i]
	result := make(map[Alphabet]string, d.AlphabetCount)
	for pos, ci := range array {
		if int(ci) >= len(d.Correlations) {
			return nil, FormatViolationError{Stage: "complete-correlation", Detail: fmt.Sprintf("correlation index %d out of range", ci)}
		}
		correlation := d.Correlations[ci]
		for alphabet, symIdx := range correlation {
			if int(symIdx) >= len(d.SymbolArrays) {
				return nil, FormatViolationError{Stage: "complete-correlation", Detail: fmt.Sprintf("symbol array index %d out of range", symIdx)}
			}
			text := string(d.SymbolArrays[symIdx])
			if pos == 0 {
				result[alphabet] = text
				continue
			}
			existing, ok := result[alphabet]
			if !ok {
				return nil, FormatViolationError{Stage: "complete-correlation", Detail: fmt.Sprintf("alphabet %d absent from initial correlation of array %d", alphabet, i)}
			}
			result[alphabet] = existing + text
		}
	}

	d.correlationCache.Add(i, result)
	return result, nil
}
