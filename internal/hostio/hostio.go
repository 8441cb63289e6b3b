// Package hostio provides the concrete StdinReader and FileReader the
// evaluator's `input()` and `read("path")` expressions depend on
// (spec.md §5, §9; SPEC_FULL.md §4.6). These are thin, blocking,
// single-threaded wrappers. Stdin keeps one buffered scanner across
// calls; Files buffers nothing beyond a single read.
package hostio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Stdin reads one whitespace-separated integer per call from an
// underlying reader, defaulting to os.Stdin.
type Stdin struct {
	scanner *bufio.Scanner
}

func NewStdin(r io.Reader) *Stdin {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Stdin{scanner: scanner}
}

func NewStdinFromOS() *Stdin {
	return NewStdin(os.Stdin)
}

func (s *Stdin) ReadInt() (int32, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("no more input on stdin")
	}
	n, err := strconv.ParseInt(s.scanner.Text(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("stdin token %q is not an integer", s.scanner.Text())
	}
	return int32(n), nil
}

// Files opens a named file, extracts a single whitespace-separated
// integer, and closes the file before returning — the handle never
// outlives one `read("path")` call.
type Files struct{}

func NewFiles() *Files { return &Files{} }

func (Files) ReadIntFrom(path string) (int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("file %q has no whitespace-separated integer to read", path)
	}
	n, err := strconv.ParseInt(scanner.Text(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("file %q token %q is not an integer", path, scanner.Text())
	}
	return int32(n), nil
}
