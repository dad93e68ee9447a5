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
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBitStreamReadsLeastSignificantBitFirst(t *testing.T) {
	t.Parallel()

	// 0b1011_0010 -> bits emitted in order: 0,1,0,0,1,1,0,1
	data := []byte{0b1011_0010}
	bs := NewBitStream(bytes.NewReader(data))

	want := []int{0, 1, 0, 0, 1, 1, 0, 1}
	for i, w := range want {
		got, err := bs.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("bit %d: got %d, want %d", i, got, w)
		}
	}
}

func TestBitStreamFetchesFreshByteOnlyWhenExhausted(t *testing.T) {
	t.Parallel()

	data := []byte{0b0000_0001, 0b0000_0001}
	bs := NewBitStream(bytes.NewReader(data))

	for i := 0; i < 8; i++ {
		if _, err := bs.ReadBit(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	bit, err := bs.ReadBit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bit != 1 {
		t.Errorf("first bit of second byte: got %d, want 1", bit)
	}
}

func TestBitStreamUnexpectedEndOfFile(t *testing.T) {
	t.Parallel()

	bs := NewBitStream(bytes.NewReader(nil))
	_, err := bs.ReadBit()
	if !errors.Is(err, ErrUnexpectedEndOfFile) {
		t.Fatalf("got %v, want ErrUnexpectedEndOfFile", err)
	}
}

type failingSource struct{ err error }

func (f failingSource) ReadByte() (byte, error) { return 0, f.err }

func TestBitStreamWrapsNonEOFErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	bs := NewBitStream(failingSource{err: boom})
	_, err := bs.ReadBit()

	var ioErr IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("got %v, want IOError", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("IOError does not wrap underlying error")
	}
}

func TestByteSourceFromReaderPassesThroughByteReaders(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader([]byte{0x42})
	src := ByteSourceFromReader(r)
	b, err := src.ReadByte()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != 0x42 {
		t.Errorf("got %#x, want 0x42", b)
	}
}

type noByteReader struct{ r io.Reader }

func (n *noByteReader) Read(p []byte) (int, error) { return n.r.Read(p) }

func TestByteSourceFromReaderAdaptsPlainReaders(t *testing.T) {
	t.Parallel()

	src := ByteSourceFromReader(&noByteReader{r: bytes.NewReader([]byte{1, 2, 3})})
	for _, want := range []byte{1, 2, 3} {
		got, err := src.ReadByte()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %d, want %d", got, want)
		}
	}
	if _, err := src.ReadByte(); err == nil {
		t.Error("expected error at end of stream")
	}
}
