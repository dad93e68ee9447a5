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
	"io"
	"path/filepath"
	"strings"
)

// FileInfo describes one member of an archive.
type FileInfo struct {
	Name string // Full path within the archive
	Size int64  // Uncompressed size
}

// Archive provides read access to the members of a ZIP, 7z, or RAR
// file.
type Archive interface {
	// List returns every member of the archive.
	List() ([]FileInfo, error)

	// Open opens one member for streaming and reports its
	// uncompressed size.
	Open(internalPath string) (io.ReadCloser, int64, error)

	// Close releases the archive's underlying handle.
	Close() error
}

// OpenArchive opens an archive file based on its extension: .zip,
// .7z, or .rar.
func OpenArchive(path string) (Archive, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".zip":
		return OpenZIP(path)
	case ".7z":
		return OpenSevenZip(path)
	case ".rar":
		return OpenRAR(path)
	default:
		return nil, FormatError{Format: ext}
	}
}

// IsArchiveExtension reports whether ext names a supported archive
// format.
func IsArchiveExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".zip", ".7z", ".rar":
		return true
	default:
		return false
	}
}
