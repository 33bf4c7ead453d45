package batch

import "time"

// Stage describes a step of evaluating one item.
type Stage string

const (
	// StageParse is the parsing stage.
	StageParse Stage = "parse"
	// StageEval is the evaluation stage.
	StageEval Stage = "eval"
	// StageFormat is the output formatting stage.
	StageFormat Stage = "format"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the item is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the item is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the item finished successfully.
	StatusDone Status = "done"
	// StatusError indicates the item failed.
	StatusError Status = "error"
)

// Event reports progress for an item (or for the whole run when Item is empty).
type Event struct {
	Item    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Run calls OnEvent from several
// goroutines; implementations must be safe for that.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations of one item.
type Timings struct {
	stages map[Stage]time.Duration
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] = dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Sum returns the sum of durations across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
