// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: source/source.go
// Summary: In-memory byte sources for the hexview.Source interface.

// Package source provides ready-made byte sources for the viewer: empty,
// in-memory, file-backed and SQLite-blob-backed, plus a change watcher.
package source

// Empty is a zero-size source.
type Empty struct{}

func (Empty) Read(uint64, []byte) (int, error) {
	return 0, nil
}

func (Empty) Size() (uint64, error) {
	return 0, nil
}

// Bytes serves a byte slice.
type Bytes struct {
	data []byte
}

// NewBytes creates a source over data. The slice is not copied.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

func (b *Bytes) Read(offset uint64, p []byte) (int, error) {
	if offset >= uint64(len(b.data)) {
		return 0, nil
	}
	return copy(p, b.data[offset:]), nil
}

func (b *Bytes) Size() (uint64, error) {
	return uint64(len(b.data)), nil
}
