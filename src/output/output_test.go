package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple txt file",
			input:    "capture.txt",
			expected: "capture_output.txt",
		},
		{
			name:     "nested path",
			input:    filepath.Join("logs", "build", "session.txt"),
			expected: filepath.Join("logs", "build", "session_output.txt"),
		},
		{
			name:     "no extension",
			input:    filepath.Join("tmp", "dump"),
			expected: filepath.Join("tmp", "dump_output.txt"),
		},
		{
			name:     "multiple dots keep inner ones",
			input:    "run.2024.txt",
			expected: "run.2024_output.txt",
		},
		{
			name:     "no determinable stem",
			input:    "..",
			expected: "output_output.txt",
		},
		{
			name:     "dot only",
			input:    ".",
			expected: "output_output.txt",
		},
		{
			name:     "hidden file with only extension",
			input:    ".txt",
			expected: "output_output.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Path(tt.input)
			if result != tt.expected {
				t.Errorf("Path(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWriterWritesLinesInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter() error: %v", err)
	}

	lines := []string{"first", "", "third"}
	for _, line := range lines {
		if err := w.WriteLine(line); err != nil {
			t.Fatalf("WriteLine(%q) error: %v", line, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if want := "first\n\nthird\n"; string(content) != want {
		t.Errorf("output file = %q, expected %q", content, want)
	}
}

func TestWriterOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(path, []byte("stale content\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter() error: %v", err)
	}
	if err := w.WriteLine("fresh"); err != nil {
		t.Fatalf("WriteLine() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if want := "fresh\n"; string(content) != want {
		t.Errorf("output file = %q, expected %q", content, want)
	}
}
