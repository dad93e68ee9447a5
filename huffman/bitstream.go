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

import "io"

// ByteSource produces the next byte of a stream, or an error. Any
// io.Reader can be adapted to it with ByteSourceFromReader; an
// io.ByteReader already satisfies it.
type ByteSource interface {
	ReadByte() (byte, error)
}

// ByteSourceFromReader adapts an io.Reader to a ByteSource. If r
// already implements io.ByteReader (as *bufio.Reader and *bytes.Reader
// do) it is used directly, avoiding an extra indirection.
func ByteSourceFromReader(r io.Reader) ByteSource {
	if br, ok := r.(ByteSource); ok {
		return br
	}
	return &readerByteSource{r: r}
}

type readerByteSource struct {
	r   io.Reader
	buf [1]byte
}

func (s *readerByteSource) ReadByte() (byte, error) {
	n, err := s.r.Read(s.buf[:])
	if n == 1 {
		// A reader may return (1, io.EOF); the byte is still valid.
		return s.buf[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

// BitStream reads single bits from a ByteSource, least-significant
// bit first: bit 0 of a byte is emitted before bit 1, and so on. A
// fresh byte is fetched only once the current byte is exhausted. The
// stream has no seek and no unread; it is single-threaded and
// single-consumer, matching the byte source it wraps.
type BitStream struct {
	src       ByteSource
	buffer    byte
	remaining uint
}

// NewBitStream wraps src in a BitStream.
func NewBitStream(src ByteSource) *BitStream {
	return &BitStream{src: src}
}

// ReadBit returns the next bit (0 or 1).
func (b *BitStream) ReadBit() (int, error) {
	if b.remaining == 0 {
		raw, err := b.src.ReadByte()
		if err != nil {
			return 0, classifyReadErr(err)
		}
		b.buffer = raw
		b.remaining = 8
	}

	result := int(b.buffer & 1)
	b.buffer >>= 1
	b.remaining--
	return result, nil
}

// ReadBool reads a single bit as a boolean, used by the definitions
// stage to decide whether another complement concept follows.
func (b *BitStream) ReadBool() (bool, error) {
	bit, err := b.ReadBit()
	if err != nil {
		return false, err
	}
	return bit != 0, nil
}
