package trace

import (
	"io"
	"sync"
)

const defaultRingSize = 4096

// RingTracer keeps the most recent events in memory so that a failed
// command can print what led up to the failure.
type RingTracer struct {
	mu     sync.RWMutex
	events []Event
	total  int // events ever stored; the slot for the next one is total % len(events)
	level  Level
}

// NewRingTracer creates a ring holding up to capacity events.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

// Emit stores a copy of ev, overwriting the oldest entry when full.
//
// At LevelError the ring still records command and job spans so a failure
// dump has some context.
func (t *RingTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.records(ev.Scope) {
		return
	}
	stored := *ev
	if stored.Seq == 0 {
		stored.Seq = NextSeq()
	}

	t.mu.Lock()
	t.events[t.total%len(t.events)] = stored
	t.total++
	t.mu.Unlock()
}

// Snapshot returns the stored events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	size := len(t.events)
	n := min(t.total, size)
	out := make([]Event, 0, n)
	for i := t.total - n; i < t.total; i++ {
		out = append(out, t.events[i%size])
	}
	return out
}

// Dropped reports how many events were overwritten.
func (t *RingTracer) Dropped() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return max(t.total-len(t.events), 0)
}

// Dump writes the snapshot to w in format.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
