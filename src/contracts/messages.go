// Package contracts defines the message types exchanged between unterm's
// agents and the records persisted by the store.
package contracts

// CleanRequest asks the pipeline to clean one input file.
// Published to: unterm.requests
// Key: {run_id}
type CleanRequest struct {
	RunID     string `json:"run_id"`
	InputPath string `json:"input_path"`
	// OutputPath is where the reassembled result will be written. Derived
	// from InputPath at submit time so every stage agrees on it.
	OutputPath string `json:"output_path"`
	Timestamp  string `json:"timestamp"`
}

// LineBatch carries an ordered slice of raw input lines.
// Published to: unterm.lines.raw
// Key: {run_id}
type LineBatch struct {
	RunID      string `json:"run_id"`
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
	// BatchIndex orders batches within a run; downstream stages sort on it
	// so cleaned output keeps line-for-line input order.
	BatchIndex   int      `json:"batch_index"`
	TotalBatches int      `json:"total_batches"`
	LineStart    int      `json:"line_start"` // 1-based line number of Lines[0]
	Lines        []string `json:"lines"`
}

// CleanedBatch is a LineBatch after the scrub agent has run the cleaner
// over every line.
// Published to: unterm.lines.clean
// Key: {run_id}
type CleanedBatch struct {
	RunID           string   `json:"run_id"`
	OutputPath      string   `json:"output_path"`
	BatchIndex      int      `json:"batch_index"`
	TotalBatches    int      `json:"total_batches"`
	LineStart       int      `json:"line_start"`
	Lines           []string `json:"lines"`
	EscapesStripped int      `json:"escapes_stripped"`
	GlyphsReplaced  int      `json:"glyphs_replaced"`
}

// RunStatus tracks one cleaning run end to end.
type RunStatus struct {
	RunID            string
	InputPath        string
	OutputPath       string
	Status           string // pending, processing, completed, failed
	BatchesTotal     int
	BatchesProcessed int
	LinesTotal       int
	EscapesStripped  int
	GlyphsReplaced   int
}

// Run states stored in RunStatus.Status.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Topic names used by the distributed pipeline.
const (
	// TopicRequests carries CleanRequest messages.
	TopicRequests = "unterm.requests"

	// TopicLinesRaw carries LineBatch messages from the ingest agent.
	TopicLinesRaw = "unterm.lines.raw"

	// TopicLinesClean carries CleanedBatch messages from the scrub agent.
	TopicLinesClean = "unterm.lines.clean"
)
