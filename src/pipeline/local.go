package pipeline

import (
	"fmt"

	"unterm-agent/src/ingest"
	"unterm-agent/src/output"
	"unterm-agent/src/patterns"
	"unterm-agent/src/report"
	"unterm-agent/src/sanitize"
)

// LocalOptions tunes a local run.
type LocalOptions struct {
	// Mask applies the artifact masking pass after cleaning.
	Mask bool

	// Progress, when set, is called after every line with the number of
	// lines processed so far.
	Progress func(lines int)
}

// RunLocal cleans one file synchronously: each input line is read, cleaned,
// and written before the next one, so output order is input order by
// construction. Any failure aborts the run; a partially written output
// file may remain.
func RunLocal(inputPath string, opts LocalOptions) (report.Run, error) {
	outputPath := output.Path(inputPath)

	reader, err := ingest.Open(inputPath)
	if err != nil {
		return report.Run{}, err
	}
	defer reader.Close()

	writer, err := output.NewWriter(outputPath)
	if err != nil {
		return report.Run{}, err
	}

	var total sanitize.Stats
	lines := 0
	for reader.Scan() {
		cleaned, stats := sanitize.CleanWithStats(reader.Line())
		if opts.Mask {
			cleaned = patterns.Mask(cleaned)
		}
		if err := writer.WriteLine(cleaned); err != nil {
			writer.Close()
			return report.Run{}, err
		}

		total.Merge(stats)
		lines++
		if opts.Progress != nil {
			opts.Progress(lines)
		}
	}
	if err := reader.Err(); err != nil {
		writer.Close()
		return report.Run{}, err
	}
	if err := writer.Close(); err != nil {
		return report.Run{}, fmt.Errorf("failed to finalize output: %w", err)
	}

	return report.New(inputPath, outputPath, lines, total), nil
}
