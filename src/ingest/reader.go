// Package ingest reads input files as ordered line sequences and feeds the
// distributed pipeline.
package ingest

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"
)

// maxLineSize bounds a single input line (1MB). Terminal captures can carry
// very long lines once wrapping is disabled.
const maxLineSize = 1024 * 1024

// LineReader yields the lines of a text file in order, with line
// terminators stripped. Lines that are not valid UTF-8 stop the read with
// an error; the cleaner downstream only ever sees valid text.
type LineReader struct {
	file    *os.File
	scanner *bufio.Scanner
	line    string
	lineNum int
	err     error
}

// Open opens the input file for line reading.
func Open(path string) (*LineReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	return &LineReader{file: f, scanner: scanner}, nil
}

// Scan advances to the next line. It returns false at end of file or on
// error; check Err afterwards.
func (r *LineReader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.err = fmt.Errorf("failed to read line %d: %w", r.lineNum+1, err)
		}
		return false
	}

	r.lineNum++
	r.line = r.scanner.Text()
	if !utf8.ValidString(r.line) {
		r.err = fmt.Errorf("line %d is not valid UTF-8", r.lineNum)
		return false
	}
	return true
}

// Line returns the current line.
func (r *LineReader) Line() string {
	return r.line
}

// LineNum returns the 1-based number of the current line.
func (r *LineReader) LineNum() int {
	return r.lineNum
}

// Err returns the first error hit while reading, if any.
func (r *LineReader) Err() error {
	return r.err
}

// Close closes the underlying file.
func (r *LineReader) Close() error {
	return r.file.Close()
}

// ReadAllLines reads the whole file into memory. The distributed path uses
// this before batching; the local path streams with Scan instead.
func ReadAllLines(path string) ([]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	for r.Scan() {
		lines = append(lines, r.Line())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
