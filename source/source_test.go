package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEmpty(t *testing.T) {
	var s Empty
	size, err := s.Size()
	if err != nil || size != 0 {
		t.Fatalf("Size = (%d, %v)", size, err)
	}
	buf := make([]byte, 8)
	n, err := s.Read(0, buf)
	if err != nil || n != 0 {
		t.Fatalf("Read = (%d, %v)", n, err)
	}
}

func TestBytes(t *testing.T) {
	s := NewBytes([]byte("hello world"))

	size, _ := s.Size()
	if size != 11 {
		t.Fatalf("size = %d", size)
	}

	buf := make([]byte, 5)
	n, err := s.Read(6, buf)
	if err != nil || n != 5 || string(buf) != "world" {
		t.Fatalf("Read(6) = (%d, %v, %q)", n, err, buf)
	}

	// Short read at the end.
	n, err = s.Read(9, buf)
	if err != nil || n != 2 || string(buf[:n]) != "ld" {
		t.Fatalf("Read(9) = (%d, %v, %q)", n, err, buf[:n])
	}

	// Reads past the end yield nothing.
	n, err = s.Read(100, buf)
	if err != nil || n != 0 {
		t.Fatalf("Read(100) = (%d, %v)", n, err)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	content := bytes.Repeat([]byte{0xAB, 0xCD}, 50)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	size, err := s.Size()
	if err != nil || size != 100 {
		t.Fatalf("Size = (%d, %v)", size, err)
	}

	buf := make([]byte, 4)
	n, err := s.Read(10, buf)
	if err != nil || n != 4 || !bytes.Equal(buf, content[10:14]) {
		t.Fatalf("Read(10) = (%d, %v, %x)", n, err, buf)
	}

	// Short read at EOF is not an error.
	n, err = s.Read(98, buf)
	if err != nil || n != 2 {
		t.Fatalf("Read(98) = (%d, %v)", n, err)
	}

	// Growth is visible through Size.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	f.Close()

	size, err = s.Size()
	if err != nil || size != 103 {
		t.Fatalf("Size after append = (%d, %v)", size, err)
	}
}

func TestFileOpenMissing(t *testing.T) {
	if _, err := OpenFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error")
	}
}
