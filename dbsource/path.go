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
	"os"
	"path/filepath"
	"strings"
)

// Path is a parsed reference to a file that may live inside an
// archive.
type Path struct {
	ArchivePath  string // Path to the archive file, or the plain file itself
	InternalPath string // Path inside the archive; empty means auto-detect or not an archive
}

// ParsePath parses a path of the form "/path/to/archive.zip/db.sdb"
// into its archive and member components. It returns (nil, nil) if
// path does not reference an archive member and is not itself an
// archive file.
func ParsePath(path string) (*Path, error) {
	normalized := filepath.ToSlash(path)

	for _, ext := range []string{".zip", ".7z", ".rar"} {
		pattern := ext + "/"
		idx := strings.Index(strings.ToLower(normalized), pattern)
		if idx == -1 {
			continue
		}
		archivePath := path[:idx+len(ext)]
		internalPath := path[idx+len(ext)+1:]

		if _, err := os.Stat(archivePath); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("stat archive %s: %w", archivePath, err)
		}
		return &Path{ArchivePath: archivePath, InternalPath: internalPath}, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if IsArchiveExtension(ext) {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, nil //nolint:nilnil // documented "not an archive path" result
			}
			return nil, fmt.Errorf("stat archive %s: %w", path, err)
		}
		return &Path{ArchivePath: path}, nil
	}

	return nil, nil //nolint:nilnil // documented "not an archive path" result
}
