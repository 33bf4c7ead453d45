// Package observ collects per-stage wall-clock timings for the --timings flag.
package observ

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stage records the duration of one named step (parse, eval, format) or
// of a whole command.
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Count int
	Note  string
}

// Timer accumulates stage durations. It is safe for concurrent use so batch
// workers can report into one Timer.
type Timer struct {
	mu     sync.Mutex
	stages []Stage
	index  map[string]int
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{stages: make([]Stage, 0, 8), index: make(map[string]int)}
}

// Begin starts a new stage and returns its index.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stages = append(t.stages, Stage{Name: name, Start: time.Now(), Count: 1})
	return len(t.stages) - 1
}

// End finishes a stage by its index.
func (t *Timer) End(idx int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.stages) {
		return
	}
	s := &t.stages[idx]
	s.Dur = time.Since(s.Start)
	s.Note = note
}

// Add folds d into the running total for name. Stages added this way are
// reported once with their call count.
func (t *Timer) Add(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i, ok := t.index[name]; ok {
		t.stages[i].Dur += d
		t.stages[i].Count++
		return
	}
	t.index[name] = len(t.stages)
	t.stages = append(t.stages, Stage{Name: name, Dur: d, Count: 1})
}

// Summary returns a human-readable table of all stages.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, s := range report.Stages {
		fmt.Fprintf(&sb, "  %-20s %9.3f ms", s.Name, s.DurationMS)
		if s.Count > 1 {
			fmt.Fprintf(&sb, "  x%d", s.Count)
		}
		if s.Note != "" {
			sb.WriteString("  // " + s.Note)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "  %-20s %9.3f ms\n", "total", report.TotalMS)
	return sb.String()
}

// StageReport: сжатая информация о стадии для сериализации.
type StageReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Stages  []StageReport `json:"stages"`
}

// Report формирует срез стадий и общую длительность в миллисекундах.
// Накопленные через Add стадии идут после обычных, по имени.
func (t *Timer) Report() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.stages) == 0 {
		return Report{}
	}
	report := Report{Stages: make([]StageReport, 0, len(t.stages))}
	var total time.Duration
	var added []StageReport
	for _, s := range t.stages {
		sr := StageReport{Name: s.Name, DurationMS: durationToMillis(s.Dur), Count: s.Count, Note: s.Note}
		if _, ok := t.index[s.Name]; ok {
			added = append(added, sr)
			continue
		}
		total += s.Dur
		report.Stages = append(report.Stages, sr)
	}
	sort.Slice(added, func(i, j int) bool { return added[i].Name < added[j].Name })
	report.Stages = append(report.Stages, added...)
	if total == 0 {
		for _, s := range t.stages {
			total += s.Dur
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
