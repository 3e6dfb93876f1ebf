// Package journal records simulation runs and their sampled paths. The core
// simulator never writes here itself; callers opt in after a run completes.
package journal

import "time"

// RunRecord captures one simulation run: the full parameter set plus the
// terminal value, keyed by a time-sortable run ID.
type RunRecord struct {
	RunID     string
	CreatedAt time.Time

	S0      float64
	Mu      float64
	Sigma   float64
	Horizon float64
	Steps   int
	Seed    *uint64 // nil for unseeded runs

	Terminal float64
}

// Sample is one point of a recorded path.
type Sample struct {
	RunID string
	Idx   int
	Time  float64
	Value float64
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordPath(runID string, times, values []float64) error
	Close() error
}
