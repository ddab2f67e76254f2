package ingest

import (
	"fmt"

	"unterm-agent/src/contracts"
)

// BatchSize is the number of lines per LineBatch. Batches carry no overlap:
// cleaning is context-free per line and the reassembled output must match
// the input line for line.
const BatchSize = 500

// BatchLines splits a file's lines into ordered LineBatch records for the
// given request. An empty file yields a single empty batch so downstream
// stages still observe the run.
func BatchLines(lines []string, req contracts.CleanRequest) []contracts.LineBatch {
	total := (len(lines) + BatchSize - 1) / BatchSize
	if total == 0 {
		total = 1
	}

	batches := make([]contracts.LineBatch, 0, total)
	for i := 0; i < total; i++ {
		start := i * BatchSize
		end := start + BatchSize
		if end > len(lines) {
			end = len(lines)
		}

		batches = append(batches, contracts.LineBatch{
			RunID:        req.RunID,
			InputPath:    req.InputPath,
			OutputPath:   req.OutputPath,
			BatchIndex:   i,
			TotalBatches: total,
			LineStart:    start + 1,
			Lines:        lines[start:end],
		})
	}
	return batches
}

// FormatBatchInfo returns a human-readable summary of one batch.
func FormatBatchInfo(batch contracts.LineBatch) string {
	return fmt.Sprintf("Batch %d/%d: lines %d-%d",
		batch.BatchIndex+1,
		batch.TotalBatches,
		batch.LineStart,
		batch.LineStart+len(batch.Lines)-1)
}
