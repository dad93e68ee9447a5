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

package dbsource

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sdb-format/go-sdb/huffman"
)

// multiCloser closes a set of io.Closer values in reverse order,
// collecting the first error.
type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for i := len(m) - 1; i >= 0; i-- {
		if err := m[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open locates and opens the SDB byte stream named by path: a plain
// file (optionally gzip/xz/zstd-compressed) read through fs, or a
// member of a ZIP/7z/RAR archive (also optionally compressed). member
// overrides auto-detection of which archive entry to read; pass "" to
// auto-detect the first .sdb-like entry or honor a path embedded via
// ParsePath (e.g. "games.zip/db.sdb.xz").
//
// fs drives only the plain-file path: archive formats are opened by
// their native path-based decoders, which do not accept an afero.Fs.
// Real callers pass afero.NewOsFs(); tests can substitute
// afero.NewMemMapFs() for the non-archive case.
func Open(fs afero.Fs, path string, member string) (huffman.ByteSource, io.Closer, error) {
	if member == "" {
		if p, err := ParsePath(path); err != nil {
			return nil, nil, fmt.Errorf("parse path: %w", err)
		} else if p != nil && p.InternalPath != "" {
			path, member = p.ArchivePath, p.InternalPath
		} else if p != nil {
			path = p.ArchivePath
		}
	}

	if IsArchiveExtension(strings.ToLower(filepath.Ext(trimCompressionSuffix(path)))) {
		return openArchiveMember(path, member)
	}
	return openPlainFile(fs, path)
}

func openArchiveMember(path, member string) (huffman.ByteSource, io.Closer, error) {
	arc, err := OpenArchive(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}

	if member == "" {
		member, err = DetectSDBFile(arc)
		if err != nil {
			_ = arc.Close()
			return nil, nil, err
		}
	}

	reader, _, err := arc.Open(member)
	if err != nil {
		_ = arc.Close()
		return nil, nil, fmt.Errorf("open archive member %q: %w", member, err)
	}

	decoded, err := decompress(member, reader)
	if err != nil {
		_ = reader.Close()
		_ = arc.Close()
		return nil, nil, err
	}

	closers := multiCloser{arc, reader}
	if dc, ok := decoded.(io.Closer); ok {
		closers = append(closers, dc)
	}
	return huffman.ByteSourceFromReader(decoded), closers, nil
}

func openPlainFile(fs afero.Fs, path string) (huffman.ByteSource, io.Closer, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}

	decoded, err := decompress(path, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	closers := multiCloser{f}
	if dc, ok := decoded.(io.Closer); ok {
		closers = append(closers, dc)
	}
	return huffman.ByteSourceFromReader(decoded), closers, nil
}
