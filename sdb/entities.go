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

// SymbolArray is a decoded string: a sequence of Unicode scalars.
type SymbolArray string

// Language is one entry of the language list: a code and the number
// of alphabets it owns. Alphabet ownership is derived by partitioning
// the flattened 0..A-1 alphabet space in language order, so Language
// itself does not store the owned Alphabet range.
type Language struct {
	Code          LanguageCode
	AlphabetCount uint32
}

// ConversionPair maps one symbol array in the source alphabet to one
// in the target alphabet.
type ConversionPair struct {
	Source SymbolArrayIndex
	Target SymbolArrayIndex
}

// Conversion is an ordered set of symbol-array rewrite rules from one
// alphabet to another.
type Conversion struct {
	Source Alphabet
	Target Alphabet
	Pairs  []ConversionPair
}

// Correlation is a finite map from Alphabet to SymbolArrayIndex, with
// fewer entries than the total alphabet count A.
type Correlation map[Alphabet]SymbolArrayIndex

// CorrelationArray is an ordered sequence of correlation references;
// its semantic value is the per-alphabet concatenation of the
// referenced correlations' strings, computed by CompleteCorrelation.
type CorrelationArray []CorrelationIndex

// Acceptation binds a concept to one of its written forms.
type Acceptation struct {
	Concept          Concept
	CorrelationArray CorrelationArrayIndex
}

// Definition narrows a concept to a base concept plus a set of
// complement concepts to exclude, in strictly increasing order.
type Definition struct {
	Base        Concept
	Complements []Concept
}
