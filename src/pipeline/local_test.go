package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestRunLocalCleansFile(t *testing.T) {
	input := writeInput(t, "session.txt",
		"\x1b[31mHello\x1b[0m\n"+
			"├──┤\n"+
			"│ data │\n"+
			"plain ascii line\n"+
			"╔═══╗\n"+
			"\x1b[31\n")

	run, err := RunLocal(input, LocalOptions{})
	if err != nil {
		t.Fatalf("RunLocal() error: %v", err)
	}

	wantPath := filepath.Join(filepath.Dir(input), "session_output.txt")
	if run.OutputPath != wantPath {
		t.Errorf("OutputPath = %q, expected %q", run.OutputPath, wantPath)
	}

	content, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	want := "Hello\n+--+\n| data |\nplain ascii line\n+===+\n\x1b[31\n"
	if string(content) != want {
		t.Errorf("output = %q, expected %q", content, want)
	}

	if run.Lines != 6 {
		t.Errorf("Lines = %d, expected 6", run.Lines)
	}
	if run.EscapesStripped != 2 {
		t.Errorf("EscapesStripped = %d, expected 2", run.EscapesStripped)
	}
	if run.GlyphsReplaced == 0 {
		t.Error("GlyphsReplaced = 0, expected replacements")
	}
}

func TestRunLocalProgressCallback(t *testing.T) {
	input := writeInput(t, "in.txt", "a\nb\nc\n")

	var calls []int
	_, err := RunLocal(input, LocalOptions{Progress: func(lines int) {
		calls = append(calls, lines)
	}})
	if err != nil {
		t.Fatalf("RunLocal() error: %v", err)
	}

	if len(calls) != 3 || calls[2] != 3 {
		t.Errorf("progress calls = %v, expected [1 2 3]", calls)
	}
}

func TestRunLocalMask(t *testing.T) {
	input := writeInput(t, "in.txt", "\x1b[1mdeploy 550e8400-e29b-41d4-a716-446655440000\x1b[0m\n")

	run, err := RunLocal(input, LocalOptions{Mask: true})
	if err != nil {
		t.Fatalf("RunLocal() error: %v", err)
	}

	content, err := os.ReadFile(run.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if want := "deploy <UUID>\n"; string(content) != want {
		t.Errorf("output = %q, expected %q", content, want)
	}
}

func TestRunLocalMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")

	if _, err := RunLocal(missing, LocalOptions{}); err == nil {
		t.Fatal("RunLocal() expected error for missing input, got nil")
	}

	// A failed open must not leave an output file behind.
	if _, err := os.Stat(filepath.Join(t.TempDir(), "absent_output.txt")); err == nil {
		t.Error("output file created for missing input")
	}
}

func TestRunLocalEmptyFile(t *testing.T) {
	input := writeInput(t, "empty.txt", "")

	run, err := RunLocal(input, LocalOptions{})
	if err != nil {
		t.Fatalf("RunLocal() error: %v", err)
	}
	if run.Lines != 0 {
		t.Errorf("Lines = %d, expected 0", run.Lines)
	}

	content, err := os.ReadFile(run.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("output = %q, expected empty", content)
	}
}
