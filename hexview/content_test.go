package hexview

import (
	"bytes"
	"errors"
	"testing"
)

// memSource serves bytes where the value equals the offset modulo 251, a
// prime, so misaligned reads are easy to spot.
type memSource struct {
	size  uint64
	fail  bool
	reads int
}

func (s *memSource) Read(offset uint64, p []byte) (int, error) {
	s.reads++
	if s.fail {
		return 0, errors.New("read failed")
	}
	n := 0
	for i := range p {
		if offset+uint64(i) >= s.size {
			break
		}
		p[i] = byte((offset + uint64(i)) % 251)
		n++
	}
	return n, nil
}

func (s *memSource) Size() (uint64, error) {
	return s.size, nil
}

func TestContentUpdateFillsRows(t *testing.T) {
	src := &memSource{size: 100}
	c, err := NewContent(src)
	if err != nil {
		t.Fatal(err)
	}

	c.Update(Viewport{X: 0, Y: 0, Columns: 8, Rows: 4, VirtualColumns: 16})

	// Row r shows bytes [r*16, r*16+8).
	for r := int64(0); r < 4; r++ {
		for col := int64(0); col < 8; col++ {
			want := byte((r*16 + col) % 251)
			got := c.data[r*8+col]
			if got != want {
				t.Errorf("row %d col %d = %d, want %d", r, col, got, want)
			}
		}
	}
	if src.reads != 4 {
		t.Errorf("reads = %d, want one per row", src.reads)
	}
}

func TestContentUpdateIsIdempotent(t *testing.T) {
	src := &memSource{size: 100}
	c, err := NewContent(src)
	if err != nil {
		t.Fatal(err)
	}
	vp := Viewport{X: 1, Y: 2, Columns: 8, Rows: 4, VirtualColumns: 16}

	c.Update(vp)
	first := append([]byte(nil), c.data...)

	// A second update over an unchanged source rebuilds the exact same
	// window.
	c.Update(vp)
	if !bytes.Equal(c.data, first) {
		t.Fatalf("second update changed the buffer:\n%v\n%v", c.data, first)
	}
	if c.Viewport() != vp {
		t.Fatalf("viewport = %+v, want %+v", c.Viewport(), vp)
	}
	if c.Err() != nil {
		t.Fatalf("err = %v", c.Err())
	}
}

func TestContentEachSkipsPastEnd(t *testing.T) {
	src := &memSource{size: 20}
	c, err := NewContent(src)
	if err != nil {
		t.Fatal(err)
	}

	// 16 virtual columns, 8 visible: row 0 shows [0,8), row 1 shows
	// [16,20) and then runs off the end of the source.
	c.Update(Viewport{X: 0, Y: 0, Columns: 8, Rows: 2, VirtualColumns: 16})

	var items []Item
	c.Each(func(it Item) bool {
		items = append(items, it)
		return true
	})

	if len(items) != 12 {
		t.Fatalf("visited %d items, want 12", len(items))
	}
	last := items[len(items)-1]
	if last.Offset != 19 || last.Column != 3 || last.Row != 1 {
		t.Errorf("last item = %+v", last)
	}
	for _, it := range items {
		if it.Value != byte(it.Offset%251) {
			t.Errorf("offset %d has value %d", it.Offset, it.Value)
		}
	}
}

func TestContentEachStopsWhenTold(t *testing.T) {
	src := &memSource{size: 100}
	c, _ := NewContent(src)
	c.Update(Viewport{Columns: 8, Rows: 4, VirtualColumns: 16})

	n := 0
	c.Each(func(Item) bool {
		n++
		return n < 5
	})
	if n != 5 {
		t.Errorf("visited %d items, want 5", n)
	}
}

func TestContentUpdatePicksUpGrowth(t *testing.T) {
	src := &memSource{size: 10}
	c, _ := NewContent(src)
	if c.Size() != 10 {
		t.Fatalf("initial size %d", c.Size())
	}

	src.size = 64
	c.Update(Viewport{Columns: 8, Rows: 2, VirtualColumns: 16})
	if c.Size() != 64 {
		t.Errorf("size after growth = %d, want 64", c.Size())
	}
}

func TestContentReadErrorZeroFills(t *testing.T) {
	src := &memSource{size: 100}
	c, _ := NewContent(src)

	vp := Viewport{Columns: 8, Rows: 2, VirtualColumns: 16}
	c.Update(vp)
	src.fail = true
	c.Update(vp)

	if c.Err() == nil {
		t.Fatal("expected an error")
	}
	for i, v := range c.data {
		if v != 0 {
			t.Errorf("data[%d] = %d after failed read", i, v)
		}
	}
}

func TestContentZeroVirtualColumns(t *testing.T) {
	src := &memSource{size: 100}
	c, _ := NewContent(src)

	c.Update(Viewport{})
	if len(c.data) != 0 {
		t.Errorf("data allocated for empty viewport")
	}
	c.Each(func(Item) bool {
		t.Error("Each yielded an item for an empty viewport")
		return false
	})
}

func TestViewportContains(t *testing.T) {
	vp := Viewport{X: 2, Y: 1, Columns: 8, Rows: 4, VirtualColumns: 16}

	tests := []struct {
		offset   uint64
		col, row int64
		ok       bool
	}{
		{18, 0, 0, true},  // top left corner
		{25, 7, 0, true},  // top right corner
		{66, 0, 3, true},  // bottom left corner
		{17, 0, 0, false}, // column left of viewport
		{26, 0, 0, false}, // column right of viewport
		{2, 0, 0, false},  // row above viewport
		{82, 0, 0, false}, // row below viewport
	}
	for _, tt := range tests {
		col, row, ok := vp.Contains(tt.offset)
		if ok != tt.ok || col != tt.col || row != tt.row {
			t.Errorf("Contains(%d) = (%d, %d, %v), want (%d, %d, %v)",
				tt.offset, col, row, ok, tt.col, tt.row, tt.ok)
		}
	}
}

func TestViewportEachRow(t *testing.T) {
	vp := Viewport{X: 2, Y: 1, Columns: 8, Rows: 3, VirtualColumns: 16}

	var got [][2]uint64
	vp.EachRow(func(start, end uint64) bool {
		got = append(got, [2]uint64{start, end})
		return true
	})

	want := [][2]uint64{{18, 26}, {34, 42}, {50, 58}}
	if len(got) != len(want) {
		t.Fatalf("EachRow yielded %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}
