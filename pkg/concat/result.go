// File: pkg/concat/result.go
package concat

// Status classifies the outcome of processing one file.
type Status int

const (
	// StatusEmitted means a record was written for the file.
	StatusEmitted Status = iota
	// StatusSkippedBinary means the binary heuristic excluded the file.
	StatusSkippedBinary
	// StatusFailed means reading or converting the file failed; the
	// failure was reported and the run continued.
	StatusFailed
)

// Result is the per-file outcome. Failures carry their cause; they are
// aggregated for reporting only and never abort the traversal.
type Result struct {
	Path   string
	Status Status
	Err    error
}

// Stats aggregates per-file results across one run.
type Stats struct {
	Emitted       int
	SkippedBinary int
	Failed        int
}

func (s *Stats) add(r Result) {
	switch r.Status {
	case StatusEmitted:
		s.Emitted++
	case StatusSkippedBinary:
		s.SkippedBinary++
	case StatusFailed:
		s.Failed++
	}
}
