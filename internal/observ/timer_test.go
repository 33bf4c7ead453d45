package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("eval")
	tm.End(idx, "3 jobs")
	tm.End(42, "ignored")

	rep := tm.Report()
	if len(rep.Stages) != 1 || rep.Stages[0].Name != "eval" || rep.Stages[0].Note != "3 jobs" {
		t.Fatalf("unexpected report %+v", rep)
	}
	if !strings.Contains(tm.Summary(), "// 3 jobs") {
		t.Fatalf("summary misses note:\n%s", tm.Summary())
	}
}

func TestTimerAddConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
			tm.Add("eval", 2*time.Millisecond)
		}()
	}
	wg.Wait()

	rep := tm.Report()
	if len(rep.Stages) != 2 || rep.Stages[0].Name != "eval" || rep.Stages[1].Name != "parse" {
		t.Fatalf("unexpected stages %+v", rep.Stages)
	}
	if rep.Stages[1].Count != 8 || rep.Stages[1].DurationMS != 8 {
		t.Fatalf("parse = %+v", rep.Stages[1])
	}
	if rep.TotalMS != 24 {
		t.Fatalf("total = %v, want 24", rep.TotalMS)
	}
}

func TestTimerEmpty(t *testing.T) {
	if rep := NewTimer().Report(); rep.TotalMS != 0 || rep.Stages != nil {
		t.Fatalf("empty timer report %+v", rep)
	}
}
