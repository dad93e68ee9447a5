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

// Package sdb reads the SDB binary format: a compact lexical-semantic
// database built from symbol arrays, languages, alphabets, conversion
// rules, correlations, correlation arrays, acceptations and
// definitions, encoded as a bit-level canonical Huffman stream. The
// format is read in a single pass; there is no writer and no mutation
// or indexing beyond CompleteCorrelation.
package sdb

import (
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/sdb-format/go-sdb/huffman"
)

const languageCodeMax = 26*26 - 1

var magic = [4]byte{'S', 'D', 'B', 0x01}

// Reader decodes one SDB stream into a Database. A Reader is
// single-use: Read consumes it.
type Reader struct {
	src  huffman.ByteSource
	bs   *huffman.BitStream
	nat2 *huffman.NaturalTable[uint64]
	nat3 *huffman.NaturalTable[uint64]
	nat4 *huffman.NaturalTable[uint64]
	nat8 *huffman.NaturalTable[uint64]
	int8 *huffman.IntegerTable
}

// NewReader wraps src, which must produce the complete SDB stream
// starting at its magic preamble.
func NewReader(src huffman.ByteSource) *Reader {
	return &Reader{
		src:  src,
		nat2: huffman.NewNaturalNumber[uint64](2),
		nat3: huffman.NewNaturalNumber[uint64](3),
		nat4: huffman.NewNaturalNumber[uint64](4),
		nat8: huffman.NewNaturalNumber[uint64](8),
		int8: huffman.NewIntegerNumber(8),
	}
}

// Read decodes the full stream and returns the resulting Database, or
// the first error encountered. The stream is consumed to completion
// on success; on failure the Reader is left in an unspecified state
// and must not be reused.
func (r *Reader) Read() (*Database, error) {
	if err := r.readMagic(); err != nil {
		return nil, wrap("magic", err)
	}
	r.bs = huffman.NewBitStream(r.src)

	db := newDatabase()

	symbolArrays, err := r.readSymbolArrays()
	if err != nil {
		return nil, wrap("symbol arrays", err)
	}
	db.SymbolArrays = symbolArrays
	nSa := len(symbolArrays)

	languages, alphabetCount, err := r.readLanguages()
	if err != nil {
		return nil, wrap("languages", err)
	}
	db.Languages = languages
	db.AlphabetCount = alphabetCount

	conversions, err := r.readConversions(nSa, alphabetCount)
	if err != nil {
		return nil, wrap("conversions", err)
	}
	db.Conversions = conversions

	maxConcept, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, wrap("max concept", err)
	}
	db.MaxConcept = Concept(maxConcept)

	correlations, err := r.readCorrelations(alphabetCount, nSa)
	if err != nil {
		return nil, wrap("correlations", err)
	}
	db.Correlations = correlations

	correlationArrays, err := r.readCorrelationArrays(len(correlations))
	if err != nil {
		return nil, wrap("correlation arrays", err)
	}
	db.CorrelationArrays = correlationArrays

	acceptations, err := r.readAcceptations(db.MaxConcept, len(correlationArrays))
	if err != nil {
		return nil, wrap("acceptations", err)
	}
	db.Acceptations = acceptations

	definitions, err := r.readDefinitions(db.MaxConcept)
	if err != nil {
		return nil, wrap("definitions", err)
	}
	db.Definitions = definitions

	return db, nil
}

func (r *Reader) readMagic() error {
	for i, want := range magic {
		got, err := r.src.ReadByte()
		if err != nil {
			return classifyMagicErr(err)
		}
		if got != want {
			return UnexpectedByteError{Pos: i, Expected: want, Actual: got}
		}
	}
	return nil
}

// classifyMagicErr mirrors huffman.BitStream's read-error taxonomy for
// the four magic bytes, which are read directly off the byte source
// before any BitStream exists.
func classifyMagicErr(err error) error {
	if errors.Is(err, io.EOF) {
		return huffman.ErrUnexpectedEndOfFile
	}
	return huffman.IOError{Err: err}
}

// readNatural is a small convenience for the many places the schema
// reads one bare Natural value off the stream.
func (r *Reader) readNatural(table *huffman.NaturalTable[uint64]) (uint64, error) {
	return huffman.ReadSymbol[uint64](r.bs, table)
}

func (r *Reader) readRangedInt(minV, maxV int64) (int64, error) {
	table, err := huffman.NewRangedInteger(minV, maxV)
	if err != nil {
		return 0, err
	}
	return huffman.ReadSymbol[int64](r.bs, table)
}

// --- Symbol arrays ---

func (r *Reader) readSymbolArrays() ([]SymbolArray, error) {
	nSa, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}
	if nSa == 0 {
		return nil, ErrNotImplemented
	}

	charsTable, err := huffman.ReadTable[rune](r.bs, r.readCharBase, r.readCharDiff)
	if err != nil {
		return nil, fmt.Errorf("read chars table: %w", err)
	}
	lengthsTable, err := huffman.ReadTable[uint32](r.bs, r.readLengthBase8_3, r.readLengthDiff8_3)
	if err != nil {
		return nil, fmt.Errorf("read lengths table: %w", err)
	}

	arrays := make([]SymbolArray, 0, nSa)
	for i := uint64(0); i < nSa; i++ {
		length, err := huffman.ReadSymbol[uint32](r.bs, lengthsTable)
		if err != nil {
			return nil, fmt.Errorf("read array %d length: %w", i, err)
		}
		runes := make([]rune, 0, length)
		for j := uint32(0); j < length; j++ {
			ch, err := huffman.ReadSymbol[rune](r.bs, charsTable)
			if err != nil {
				return nil, fmt.Errorf("read array %d char %d: %w", i, j, err)
			}
			runes = append(runes, ch)
		}
		arrays = append(arrays, SymbolArray(string(runes)))
	}
	return arrays, nil
}

func (r *Reader) readCharBase(bs *huffman.BitStream) (rune, error) {
	v, err := huffman.ReadSymbol[uint64](bs, r.nat8)
	if err != nil {
		return 0, err
	}
	return validRune(v)
}

func (r *Reader) readCharDiff(bs *huffman.BitStream, previous rune) (rune, error) {
	delta, err := huffman.ReadSymbol[uint64](bs, r.nat4)
	if err != nil {
		return 0, err
	}
	return validRune(uint64(previous) + delta + 1)
}

func validRune(v uint64) (rune, error) {
	if v > uint64(unicode.MaxRune) || !utf8.ValidRune(rune(v)) {
		return 0, InvalidCodepointError{Value: v}
	}
	return rune(v), nil
}

func (r *Reader) readLengthBase8_3(bs *huffman.BitStream) (uint32, error) {
	v, err := huffman.ReadSymbol[uint64](bs, r.nat8)
	return uint32(v), err
}

func (r *Reader) readLengthDiff8_3(bs *huffman.BitStream, previous uint32) (uint32, error) {
	delta, err := huffman.ReadSymbol[uint64](bs, r.nat3)
	if err != nil {
		return 0, err
	}
	return previous + uint32(delta) + 1, nil
}

// --- Languages ---

func (r *Reader) readLanguages() ([]Language, uint32, error) {
	count, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, 0, fmt.Errorf("read count: %w", err)
	}

	languages := make([]Language, 0, count)
	nextMin := int64(0)
	var alphabetCount uint32
	for i := uint64(0); i < count; i++ {
		code, err := r.readRangedInt(nextMin, languageCodeMax)
		if err != nil {
			return nil, 0, fmt.Errorf("read language %d code: %w", i, err)
		}
		nextMin = code + 1

		n, err := r.readNatural(r.nat2)
		if err != nil {
			return nil, 0, fmt.Errorf("read language %d alphabet count: %w", i, err)
		}
		languages = append(languages, Language{Code: LanguageCode(code), AlphabetCount: uint32(n)})
		alphabetCount += uint32(n)
	}
	return languages, alphabetCount, nil
}

// --- Conversions ---

func (r *Reader) readConversions(nSa int, alphabetCount uint32) ([]Conversion, error) {
	count, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	if alphabetCount == 0 {
		return nil, FormatViolationError{Stage: "conversions", Detail: "nonzero conversions with zero alphabets"}
	}

	symbolArrayTable, err := huffman.NewRangedIndex[SymbolArrayIndex](0, uint64(nSa-1))
	if err != nil {
		return nil, fmt.Errorf("build symbol array table: %w", err)
	}

	conversions := make([]Conversion, 0, count)
	minSrc, minTgt := uint64(0), uint64(0)
	for i := uint64(0); i < count; i++ {
		source, err := huffman.ReadSymbol[Alphabet](r.bs, mustRangedAlphabet(minSrc, uint64(alphabetCount)-1))
		if err != nil {
			return nil, fmt.Errorf("read conversion %d source: %w", i, err)
		}
		if uint64(source) != minSrc {
			minTgt = 0
		}
		minSrc = uint64(source)

		target, err := huffman.ReadSymbol[Alphabet](r.bs, mustRangedAlphabet(minTgt, uint64(alphabetCount)-1))
		if err != nil {
			return nil, fmt.Errorf("read conversion %d target: %w", i, err)
		}
		minTgt = uint64(target) + 1

		pairCount, err := r.readNatural(r.nat8)
		if err != nil {
			return nil, fmt.Errorf("read conversion %d pair count: %w", i, err)
		}
		pairs := make([]ConversionPair, 0, pairCount)
		for j := uint64(0); j < pairCount; j++ {
			srcSym, err := huffman.ReadSymbol[SymbolArrayIndex](r.bs, symbolArrayTable)
			if err != nil {
				return nil, fmt.Errorf("read conversion %d pair %d source symbol: %w", i, j, err)
			}
			tgtSym, err := huffman.ReadSymbol[SymbolArrayIndex](r.bs, symbolArrayTable)
			if err != nil {
				return nil, fmt.Errorf("read conversion %d pair %d target symbol: %w", i, j, err)
			}
			pairs = append(pairs, ConversionPair{Source: srcSym, Target: tgtSym})
		}
		conversions = append(conversions, Conversion{Source: source, Target: target, Pairs: pairs})
	}
	return conversions, nil
}

func mustRangedAlphabet(minV, maxV uint64) *huffman.RangedIndexTable[Alphabet] {
	table, err := huffman.NewRangedIndex[Alphabet](minV, maxV)
	if err != nil {
		// min/max are always derived from previously-decoded
		// cardinalities in non-decreasing order; an inverted range
		// here is an implementation bug, not a format error.
		panic(fmt.Sprintf("sdb: invalid alphabet range [%d,%d]: %v", minV, maxV, err))
	}
	return table
}

// --- Correlations ---

func (r *Reader) readCorrelations(alphabetCount uint32, nSa int) ([]Correlation, error) {
	count, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	lengthTable, err := huffman.ReadTable[int64](r.bs, r.readSignedLengthBase, r.readSignedLengthDiff)
	if err != nil {
		return nil, fmt.Errorf("read length table: %w", err)
	}

	valueTable, err := huffman.NewRangedIndex[SymbolArrayIndex](0, uint64(nSa-1))
	if err != nil {
		return nil, fmt.Errorf("build value table: %w", err)
	}

	correlations := make([]Correlation, 0, count)
	for i := uint64(0); i < count; i++ {
		length, err := huffman.ReadSymbol[int64](r.bs, lengthTable)
		if err != nil {
			return nil, fmt.Errorf("read correlation %d length: %w", i, err)
		}
		if length < 0 || uint64(length) >= uint64(alphabetCount) {
			return nil, FormatViolationError{Stage: "correlations", Detail: fmt.Sprintf("correlation %d length %d out of range [0,%d)", i, length, alphabetCount)}
		}

		correlation := make(Correlation, length)
		if length > 0 {
			keyTable0, err := huffman.NewRangedIndex[Alphabet](0, uint64(alphabetCount)-uint64(length))
			if err != nil {
				return nil, fmt.Errorf("build correlation %d key table: %w", i, err)
			}
			key, err := huffman.ReadSymbol[Alphabet](r.bs, keyTable0)
			if err != nil {
				return nil, fmt.Errorf("read correlation %d key 0: %w", i, err)
			}
			value, err := huffman.ReadSymbol[SymbolArrayIndex](r.bs, valueTable)
			if err != nil {
				return nil, fmt.Errorf("read correlation %d value 0: %w", i, err)
			}
			correlation[key] = value
			prevKey := uint64(key)

			for k := int64(1); k < length; k++ {
				keyTable, err := huffman.NewRangedIndex[Alphabet](prevKey+1, uint64(alphabetCount)-uint64(length)+uint64(k))
				if err != nil {
					return nil, fmt.Errorf("build correlation %d key table %d: %w", i, k, err)
				}
				key, err := huffman.ReadSymbol[Alphabet](r.bs, keyTable)
				if err != nil {
					return nil, fmt.Errorf("read correlation %d key %d: %w", i, k, err)
				}
				value, err := huffman.ReadSymbol[SymbolArrayIndex](r.bs, valueTable)
				if err != nil {
					return nil, fmt.Errorf("read correlation %d value %d: %w", i, k, err)
				}
				correlation[key] = value
				prevKey = uint64(key)
			}
		}
		correlations = append(correlations, correlation)
	}
	return correlations, nil
}

func (r *Reader) readSignedLengthBase(bs *huffman.BitStream) (int64, error) {
	return huffman.ReadSymbol[int64](bs, r.int8)
}

func (r *Reader) readSignedLengthDiff(bs *huffman.BitStream, previous int64) (int64, error) {
	delta, err := huffman.ReadSymbol[uint64](bs, r.nat8)
	if err != nil {
		return 0, err
	}
	return previous + int64(delta) + 1, nil
}

// --- Correlation arrays ---

func (r *Reader) readCorrelationArrays(nCorr int) ([]CorrelationArray, error) {
	count, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	if nCorr == 0 {
		return nil, FormatViolationError{Stage: "correlation arrays", Detail: "nonzero correlation arrays with zero correlations"}
	}

	correlationTable, err := huffman.NewRangedIndex[CorrelationIndex](0, uint64(nCorr-1))
	if err != nil {
		return nil, fmt.Errorf("build correlation table: %w", err)
	}
	lengthTable, err := huffman.ReadTable[int64](r.bs, r.readSignedLengthBase, r.readSignedLengthDiff)
	if err != nil {
		return nil, fmt.Errorf("read length table: %w", err)
	}

	arrays := make([]CorrelationArray, 0, count)
	for i := uint64(0); i < count; i++ {
		length, err := huffman.ReadSymbol[int64](r.bs, lengthTable)
		if err != nil {
			return nil, fmt.Errorf("read array %d length: %w", i, err)
		}
		if length < 0 {
			return nil, FormatViolationError{Stage: "correlation arrays", Detail: fmt.Sprintf("array %d negative length %d", i, length)}
		}
		entries := make(CorrelationArray, 0, length)
		for j := int64(0); j < length; j++ {
			ci, err := huffman.ReadSymbol[CorrelationIndex](r.bs, correlationTable)
			if err != nil {
				return nil, fmt.Errorf("read array %d entry %d: %w", i, j, err)
			}
			entries = append(entries, ci)
		}
		arrays = append(arrays, entries)
	}
	return arrays, nil
}

// --- Acceptations ---

func (r *Reader) readAcceptations(maxConcept Concept, nCa int) ([]Acceptation, error) {
	count, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	setLengthTable, err := huffman.ReadTable[int64](r.bs, r.readSignedLengthBase, r.readSignedLengthDiff)
	if err != nil {
		return nil, fmt.Errorf("read set length table: %w", err)
	}
	conceptTable, err := huffman.NewRangedIndex[Concept](1, uint64(maxConcept))
	if err != nil {
		return nil, fmt.Errorf("build concept table: %w", err)
	}

	var acceptations []Acceptation
	for i := uint64(0); i < count; i++ {
		concept, err := huffman.ReadSymbol[Concept](r.bs, conceptTable)
		if err != nil {
			return nil, fmt.Errorf("read group %d concept: %w", i, err)
		}
		length, err := huffman.ReadSymbol[int64](r.bs, setLengthTable)
		if err != nil {
			return nil, fmt.Errorf("read group %d length: %w", i, err)
		}
		if length <= 0 {
			return nil, FormatViolationError{Stage: "acceptations", Detail: fmt.Sprintf("group %d non-positive length %d", i, length)}
		}
		if length > int64(nCa) {
			return nil, FormatViolationError{Stage: "acceptations", Detail: fmt.Sprintf("group %d length %d exceeds %d correlation arrays", i, length, nCa)}
		}

		symTable0, err := huffman.NewRangedIndex[CorrelationArrayIndex](0, uint64(nCa)-uint64(length))
		if err != nil {
			return nil, fmt.Errorf("build group %d symbol table: %w", i, err)
		}
		v, err := huffman.ReadSymbol[CorrelationArrayIndex](r.bs, symTable0)
		if err != nil {
			return nil, fmt.Errorf("read group %d value 0: %w", i, err)
		}
		acceptations = append(acceptations, Acceptation{Concept: concept, CorrelationArray: v})
		prevV := uint64(v)

		for k := int64(1); k < length; k++ {
			symTable, err := huffman.NewRangedIndex[CorrelationArrayIndex](prevV+1, uint64(nCa)-uint64(length)+uint64(k))
			if err != nil {
				return nil, fmt.Errorf("build group %d symbol table %d: %w", i, k, err)
			}
			v, err := huffman.ReadSymbol[CorrelationArrayIndex](r.bs, symTable)
			if err != nil {
				return nil, fmt.Errorf("read group %d value %d: %w", i, k, err)
			}
			acceptations = append(acceptations, Acceptation{Concept: concept, CorrelationArray: v})
			prevV = uint64(v)
		}
	}
	return acceptations, nil
}

// --- Definitions ---

// readDefinitions reads the B distinct base-concept groups. Each group
// shares one base value and names ℓ concepts that use it; each of
// those ℓ concepts then reads its own complement set independently.
func (r *Reader) readDefinitions(maxConcept Concept) (map[Concept]Definition, error) {
	b, err := r.readNatural(r.nat8)
	if err != nil {
		return nil, fmt.Errorf("read base count: %w", err)
	}
	definitions := make(map[Concept]Definition)
	if b == 0 {
		return definitions, nil
	}
	if uint64(maxConcept) < b {
		return nil, FormatViolationError{Stage: "definitions", Detail: fmt.Sprintf("base count %d exceeds max concept %d", b, maxConcept)}
	}

	lengthTable, err := huffman.ReadTable[uint32](r.bs, r.readLengthBase8_8, r.readLengthDiff8_8)
	if err != nil {
		return nil, fmt.Errorf("read concept map length table: %w", err)
	}

	firstMaxBase := uint64(maxConcept) - b + 1
	minBase := uint64(1)
	for maxBase := firstMaxBase; maxBase <= uint64(maxConcept); maxBase++ {
		baseTable, err := huffman.NewRangedIndex[Concept](minBase, maxBase)
		if err != nil {
			return nil, fmt.Errorf("build base table for group with max %d: %w", maxBase, err)
		}
		base, err := huffman.ReadSymbol[Concept](r.bs, baseTable)
		if err != nil {
			return nil, fmt.Errorf("read base for group with max %d: %w", maxBase, err)
		}
		minBase = uint64(base) + 1

		length, err := huffman.ReadSymbol[uint32](r.bs, lengthTable)
		if err != nil {
			return nil, fmt.Errorf("read group length for base %d: %w", base, err)
		}
		if length == 0 {
			continue
		}
		if uint64(length) > uint64(maxConcept) {
			return nil, FormatViolationError{Stage: "definitions", Detail: fmt.Sprintf("group length %d exceeds max concept %d", length, maxConcept)}
		}

		// Each concept in the group is read and immediately followed
		// by its own complement set, matching the original reader's
		// interleaved order: concept0, complements0, concept1,
		// complements1, ... — not all concepts followed by all
		// complement sets.
		concept0Table, err := huffman.NewRangedIndex[Concept](1, uint64(maxConcept)-uint64(length)+1)
		if err != nil {
			return nil, fmt.Errorf("build concept table 0 for base %d: %w", base, err)
		}
		c0, err := huffman.ReadSymbol[Concept](r.bs, concept0Table)
		if err != nil {
			return nil, fmt.Errorf("read concept 0 for base %d: %w", base, err)
		}
		complements0, err := r.readComplementSet(maxConcept)
		if err != nil {
			return nil, fmt.Errorf("read complements for concept %d: %w", c0, err)
		}
		definitions[c0] = Definition{Base: base, Complements: complements0}
		prevC := uint64(c0)

		for k := uint32(1); k < length; k++ {
			ct, err := huffman.NewRangedIndex[Concept](prevC+1, uint64(maxConcept)-uint64(length)+1+uint64(k))
			if err != nil {
				return nil, fmt.Errorf("build concept table %d for base %d: %w", k, base, err)
			}
			ck, err := huffman.ReadSymbol[Concept](r.bs, ct)
			if err != nil {
				return nil, fmt.Errorf("read concept %d for base %d: %w", k, base, err)
			}
			complements, err := r.readComplementSet(maxConcept)
			if err != nil {
				return nil, fmt.Errorf("read complements for concept %d: %w", ck, err)
			}
			definitions[ck] = Definition{Base: base, Complements: complements}
			prevC = uint64(ck)
		}
	}
	return definitions, nil
}

// readComplementSet reads the bit-gated strictly-increasing complement
// set for one concept: a continue/stop bit, then, on continue, a
// complement from the narrowing range [min_comp, C_max].
func (r *Reader) readComplementSet(maxConcept Concept) ([]Concept, error) {
	var complements []Concept
	minComp := uint64(1)
	for minComp < uint64(maxConcept) {
		more, err := r.bs.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("read continue bit: %w", err)
		}
		if !more {
			break
		}
		table, err := huffman.NewRangedIndex[Concept](minComp, uint64(maxConcept))
		if err != nil {
			return nil, fmt.Errorf("build complement table: %w", err)
		}
		complement, err := huffman.ReadSymbol[Concept](r.bs, table)
		if err != nil {
			return nil, fmt.Errorf("read complement: %w", err)
		}
		complements = append(complements, complement)
		minComp = uint64(complement) + 1
	}
	return complements, nil
}

func (r *Reader) readLengthBase8_8(bs *huffman.BitStream) (uint32, error) {
	v, err := huffman.ReadSymbol[uint64](bs, r.nat8)
	return uint32(v), err
}

func (r *Reader) readLengthDiff8_8(bs *huffman.BitStream, previous uint32) (uint32, error) {
	delta, err := huffman.ReadSymbol[uint64](bs, r.nat8)
	if err != nil {
		return 0, err
	}
	return previous + uint32(delta) + 1, nil
}
