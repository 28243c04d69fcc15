// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hexview/content.go
// Summary: The content window: a small buffer holding exactly the bytes
// the viewport shows, refilled from a Source with one ranged read per
// visible row.

package hexview

import "sync/atomic"

var contentCounter atomic.Uint64

// Source supplies the bytes shown by a Viewer. Reads follow the io.ReaderAt
// contract: fill p starting at offset and return the number of bytes read.
// A short read past the end of the source is not an error; return what is
// there. The window issues one read per visible row, so a single refresh
// causes many small reads. Sources backed by slow media should cache.
type Source interface {
	Read(offset uint64, p []byte) (int, error)

	// Size returns the current byte size of the source. It is re-read on
	// every content update, so growing sources are picked up.
	Size() (uint64, error)
}

// Content owns the windowed copy of the source that the Viewer displays.
// Create one per document, keep it in application state, and call Update
// whenever the Viewer reports a scrolled or resized viewport.
type Content struct {
	source     Source
	sourceSize int64
	data       []byte
	viewport   Viewport
	id         uint64
	err        error
}

// NewContent creates a content window over source.
func NewContent(source Source) (*Content, error) {
	size, err := source.Size()
	if err != nil {
		return nil, err
	}
	return &Content{
		source:     source,
		sourceSize: int64(size),
		id:         contentCounter.Add(1),
	}, nil
}

// Size is the source size as of the last update.
func (c *Content) Size() uint64 {
	return uint64(c.sourceSize)
}

// Viewport returns the viewport the window was last filled for.
func (c *Content) Viewport() Viewport {
	return c.viewport
}

// ID identifies this content instance. Viewers use it to tell apart
// viewports reported against different contents.
func (c *Content) ID() uint64 {
	return c.id
}

// Err returns the first error of the last Update, or nil. Rows that
// failed to read display as zero bytes.
func (c *Content) Err() error {
	return c.err
}

// Update moves the window to viewport and refills it from the source.
// The source size is re-read first so appends become visible. A viewport
// with zero virtual columns leaves the window untouched.
func (c *Content) Update(viewport Viewport) {
	c.viewport = viewport
	if viewport.VirtualColumns == 0 {
		return
	}

	c.err = nil
	if size, err := c.source.Size(); err != nil {
		c.err = err
	} else {
		c.sourceSize = int64(size)
	}

	if len(c.data) != viewport.CellCount() {
		c.data = make([]byte, viewport.CellCount())
	}

	for r := int64(0); r < viewport.Rows; r++ {
		srcOffset := (viewport.Y+r)*viewport.VirtualColumns + viewport.X

		dstOffset := r * viewport.Columns
		dstSize := viewport.Columns
		if rest := c.sourceSize - srcOffset; rest < dstSize {
			dstSize = rest
		}
		if dstSize <= 0 {
			break
		}

		row := c.data[dstOffset : dstOffset+dstSize]
		n, err := c.source.Read(uint64(srcOffset), row)
		if err != nil && c.err == nil {
			c.err = err
		}
		for i := n; i < len(row); i++ {
			row[i] = 0
		}
	}
}

// Item is one visible byte yielded by Each.
type Item struct {
	// Offset is the absolute offset into the source.
	Offset int64
	// ViewportOffset is the linear index within the viewport buffer.
	ViewportOffset int64
	// Column and Row are viewport-relative grid coordinates.
	Column int64
	Row    int64
	// Value is the byte itself.
	Value byte
}

// Each iterates the window's bytes in row-major order, stopping at the
// end of the source or when fn returns false.
func (c *Content) Each(fn func(Item) bool) {
	if c.viewport.VirtualColumns == 0 || c.viewport.Columns == 0 {
		return
	}
	for i, v := range c.data {
		row := int64(i) / c.viewport.Columns
		col := int64(i) % c.viewport.Columns

		offset := (c.viewport.Y+row)*c.viewport.VirtualColumns + c.viewport.X + col
		if offset >= c.sourceSize {
			return
		}
		if !fn(Item{
			Offset:         offset,
			ViewportOffset: int64(i),
			Column:         col,
			Row:            row,
			Value:          v,
		}) {
			return
		}
	}
}
