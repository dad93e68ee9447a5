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
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// decompress wraps r with the decoder matching name's compression
// suffix (.gz, .xz, .zst), or returns r unchanged if name has none.
func decompress(name string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return gr, nil
	case ".xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		return xr, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return r, nil
	}
}

// trimCompressionSuffix strips a trailing .gz/.xz/.zst suffix so the
// remaining extension can be checked against IsSDBFile/IsArchiveExtension.
func trimCompressionSuffix(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".xz", ".zst":
		return strings.TrimSuffix(name, filepath.Ext(name))
	default:
		return name
	}
}
