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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// SymbolArrayIndex addresses one decoded string in Database.SymbolArrays.
type SymbolArrayIndex uint32

// Alphabet addresses one of the A alphabets derived from the language
// list; alphabet ownership is implied by partitioning, not stored.
type Alphabet uint32

// CorrelationIndex addresses one entry of Database.Correlations.
type CorrelationIndex uint32

// CorrelationArrayIndex addresses one entry of Database.CorrelationArrays.
type CorrelationArrayIndex uint32

// Concept is a dense identifier in [1, MaxConcept], populated by
// acceptations and definitions.
type Concept uint32

// LanguageCode is a value in [0, 675] rendered as two lowercase Latin
// letters.
type LanguageCode uint16

// String renders the code as two lowercase Latin letters, mirroring
// the original format's Display impl: code/26, code%26, offset 'a'.
func (c LanguageCode) String() string {
	hi := byte('A' + (c / 26))
	lo := byte('A' + (c % 26))
	return lowerCaser.String(string([]byte{hi, lo}))
}
