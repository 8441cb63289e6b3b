package hostio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStdinReadsWhitespaceSeparatedIntegers(t *testing.T) {
	s := NewStdin(strings.NewReader("42   -7\n8"))

	for _, want := range []int32{42, -7, 8} {
		got, err := s.ReadInt()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("got %d, want %d", got, want)
		}
	}

	if _, err := s.ReadInt(); err == nil {
		t.Fatal("expected an error once input is exhausted")
	}
}

func TestStdinRejectsNonIntegerToken(t *testing.T) {
	s := NewStdin(strings.NewReader("abc"))
	if _, err := s.ReadInt(); err == nil {
		t.Fatal("expected an error for a non-integer token")
	}
}

func TestFilesReadsOneIntegerAndCloses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "value.txt")
	if err := os.WriteFile(path, []byte("  123 456 "), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	n, err := NewFiles().ReadIntFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 123 {
		t.Fatalf("got %d, want 123", n)
	}
}

func TestFilesMissingFileIsError(t *testing.T) {
	if _, err := NewFiles().ReadIntFrom(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
