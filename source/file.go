// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: source/file.go
// Summary: File-backed byte source. Size is re-stated on every query so
// files that grow while displayed are picked up.

package source

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// File serves the contents of a file via ReadAt. It holds the file open
// until Close.
type File struct {
	f    *os.File
	path string
}

// OpenFile opens path for reading.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	return &File{f: f, path: path}, nil
}

// Path returns the path the file was opened from.
func (s *File) Path() string {
	return s.path
}

func (s *File) Read(offset uint64, p []byte) (int, error) {
	n, err := s.f.ReadAt(p, int64(offset))
	if errors.Is(err, io.EOF) {
		// A short read at the end of the file is expected.
		err = nil
	}
	if err != nil {
		return n, fmt.Errorf("read %s at %d: %w", s.path, offset, err)
	}
	return n, nil
}

func (s *File) Size() (uint64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", s.path, err)
	}
	return uint64(info.Size()), nil
}

// Close releases the underlying file.
func (s *File) Close() error {
	return s.f.Close()
}
