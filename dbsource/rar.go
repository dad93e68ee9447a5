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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nwaples/rardecode/v2"
)

// RARArchive provides access to members of a RAR archive. RAR
// requires sequential reading, so every List or Open reopens the
// stream from the start.
type RARArchive struct {
	file *os.File
	path string
}

// OpenRAR opens a RAR archive for reading.
func OpenRAR(path string) (*RARArchive, error) {
	file, err := os.Open(path) //nolint:gosec // caller-provided archive path
	if err != nil {
		return nil, fmt.Errorf("open RAR archive: %w", err)
	}
	return &RARArchive{file: file, path: path}, nil
}

// List returns every member of the RAR archive.
func (ra *RARArchive) List() ([]FileInfo, error) {
	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek RAR archive: %w", err)
	}
	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return nil, fmt.Errorf("create RAR reader: %w", err)
	}

	var files []FileInfo
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read RAR header: %w", err)
		}
		if header.IsDir {
			continue
		}
		files = append(files, FileInfo{Name: header.Name, Size: header.UnPackedSize})
	}
	return files, nil
}

// Open opens one member within the RAR archive.
func (ra *RARArchive) Open(internalPath string) (io.ReadCloser, int64, error) {
	internalPath = filepath.ToSlash(internalPath)
	if _, err := ra.file.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("seek RAR archive: %w", err)
	}
	reader, err := rardecode.NewReader(ra.file)
	if err != nil {
		return nil, 0, fmt.Errorf("create RAR reader: %w", err)
	}

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read RAR header: %w", err)
		}
		if strings.EqualFold(header.Name, internalPath) {
			return &rarMemberReader{reader: reader}, header.UnPackedSize, nil
		}
	}
	return nil, 0, FileNotFoundError{Archive: ra.path, InternalPath: internalPath}
}

// Close closes the RAR archive.
func (ra *RARArchive) Close() error {
	return ra.file.Close()
}

// rarMemberReader adapts rardecode.Reader, which has no Close, to
// io.ReadCloser.
type rarMemberReader struct {
	reader *rardecode.Reader
}

func (r *rarMemberReader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (*rarMemberReader) Close() error {
	return nil
}
