package pipeline

import "fmt"

// RunStats aggregates the outcome of a playlist run.
type RunStats struct {
	Total     int // pairs attempted
	Succeeded int
	Failed    int
	Chunks    int // chunk files produced across all pairs
}

// Summary returns a one-line human-readable report.
func (s RunStats) Summary() string {
	return fmt.Sprintf("%d pairs processed: %d succeeded, %d failed, %d chunks written",
		s.Total, s.Succeeded, s.Failed, s.Chunks)
}
