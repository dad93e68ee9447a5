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
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"testing"

	"github.com/spf13/afero"

	"github.com/sdb-format/go-sdb/huffman"
)

func TestOpenPlainFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/db.sdb", []byte("SDB\x01payload"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, closer, err := Open(fs, "/db.sdb", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closer.Close()

	got := readAll(t, src)
	if string(got) != "SDB\x01payload" {
		t.Fatalf("contents = %q, want %q", got, "SDB\x01payload")
	}
}

func TestOpenGzipCompressedFile(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte("SDB\x01payload")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/db.sdb.gz", buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, closer, err := Open(fs, "/db.sdb.gz", "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closer.Close()

	got := readAll(t, src)
	if string(got) != "SDB\x01payload" {
		t.Fatalf("contents = %q, want %q", got, "SDB\x01payload")
	}
}

func TestIsSDBFile(t *testing.T) {
	cases := map[string]bool{
		"db.sdb":       true,
		"db.sdb.gz":    true,
		"db.sdb.xz":    true,
		"db.sdb.zst":   true,
		"readme.txt":   false,
		"archive.zip":  false,
		"DB.SDB":       true,
	}
	for name, want := range cases {
		if got := IsSDBFile(name); got != want {
			t.Errorf("IsSDBFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParsePathArchiveMember(t *testing.T) {
	dir := t.TempDir()
	archivePath := dir + "/games.zip"
	if err := afero.WriteFile(afero.NewOsFs(), archivePath, []byte("not a real zip, just needs to exist"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := ParsePath(archivePath + "/db.sdb")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if p == nil {
		t.Fatal("ParsePath returned nil, want a parsed Path")
	}
	if p.ArchivePath != archivePath || p.InternalPath != "db.sdb" {
		t.Errorf("ParsePath = %+v, want ArchivePath=%q InternalPath=%q", p, archivePath, "db.sdb")
	}
}

func TestParsePathNotAnArchive(t *testing.T) {
	p, err := ParsePath("/nonexistent/plain.sdb")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if p != nil {
		t.Errorf("ParsePath = %+v, want nil", p)
	}
}

func readAll(t *testing.T, src huffman.ByteSource) []byte {
	t.Helper()
	var data []byte
	for {
		b, err := src.ReadByte()
		if errors.Is(err, io.EOF) {
			return data
		}
		if err != nil {
			t.Fatalf("ReadByte: %v", err)
		}
		data = append(data, b)
	}
}
