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
	"path/filepath"
	"strings"
)

// sdbExtensions are the file extensions treated as an SDB stream,
// with or without an additional compression suffix.
var sdbExtensions = map[string]bool{
	".sdb":     true,
	".sdb.gz":  true,
	".sdb.xz":  true,
	".sdb.zst": true,
}

// IsSDBFile reports whether filename has a recognized SDB extension.
func IsSDBFile(filename string) bool {
	lower := strings.ToLower(filename)
	for ext := range sdbExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return strings.ToLower(filepath.Ext(filename)) == ".sdb"
}

// DetectSDBFile scans an archive's member list and returns the path
// of the first member with a recognized SDB extension.
func DetectSDBFile(arc Archive) (string, error) {
	files, err := arc.List()
	if err != nil {
		return "", fmt.Errorf("list archive members: %w", err)
	}
	for _, file := range files {
		if IsSDBFile(file.Name) {
			return file.Name, nil
		}
	}
	return "", NoSDBFilesError{Archive: "archive"}
}
