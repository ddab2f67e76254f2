// Package output determines where cleaned text is written and writes it.
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fallbackStem is used when the input path has no usable file stem.
const fallbackStem = "output"

// Path returns the output path for an input file: same directory, stem
// renamed to "<stem>_output.txt". Inputs without a determinable stem fall
// back to "output_output.txt".
func Path(input string) string {
	stem := Stem(input)
	if stem == "" {
		stem = fallbackStem
	}
	return filepath.Join(filepath.Dir(input), stem+"_output.txt")
}

// Stem returns the file name of the input path without its extension, or ""
// when the path has no usable file name component.
func Stem(input string) string {
	base := filepath.Base(input)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Writer writes cleaned lines to the output file in input order, one line
// terminator per line. It overwrites any existing file at the path.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
}

// NewWriter creates (or truncates) the output file.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &Writer{file: f, buf: bufio.NewWriter(f)}, nil
}

// WriteLine appends one cleaned line followed by a newline.
func (w *Writer) WriteLine(line string) error {
	if _, err := w.buf.WriteString(line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write line terminator: %w", err)
	}
	return nil
}

// Close flushes buffered lines and closes the file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return w.file.Close()
}
