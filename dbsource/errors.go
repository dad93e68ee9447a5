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

// Package dbsource locates and opens the byte stream of an SDB
// database: a plain file, a compressed file (gzip, xz, zstd), or a
// member of a ZIP/7z/RAR archive — optionally both at once, e.g. an
// xz-compressed .sdb inside a .zip.
package dbsource

import "fmt"

// FormatError indicates an unsupported or invalid archive or
// compression format.
type FormatError struct {
	Format string
	Reason string
}

func (e FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported format %s: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// FileNotFoundError indicates a member was not found in an archive.
type FileNotFoundError struct {
	Archive      string
	InternalPath string
}

func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("member %q not found in archive %q", e.InternalPath, e.Archive)
}

// NoSDBFilesError indicates no .sdb member was found in an archive and
// none was named explicitly.
type NoSDBFilesError struct {
	Archive string
}

func (e NoSDBFilesError) Error() string {
	return fmt.Sprintf("no .sdb files found in archive %q", e.Archive)
}
