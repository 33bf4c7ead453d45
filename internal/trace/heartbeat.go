package trace

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"
)

// Heartbeat emits a liveness event at a fixed interval. Heartbeats without
// matching span ends point at a computation that is stuck or very long,
// typically a huge factorial or a division of multi-million-bit values.
type Heartbeat struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartHeartbeat starts the heartbeat goroutine. It returns nil when
// tracing is off or interval is not positive; Stop on nil is fine.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	h := &Heartbeat{cancel: cancel, done: make(chan struct{})}
	go h.beat(ctx, tracer, interval)
	return h
}

func (h *Heartbeat) beat(ctx context.Context, tracer Tracer, interval time.Duration) {
	defer close(h.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		tracer.Emit(&Event{
			Time:   time.Now(),
			Kind:   KindHeartbeat,
			Scope:  ScopeCommand,
			GID:    goroutineID(),
			Name:   "heartbeat",
			Detail: fmt.Sprintf("#%d", n),
			// batch workers show up here while a long op runs
			Extra: map[string]string{"goroutines": strconv.Itoa(runtime.NumGoroutine())},
		})
	}
}

// Stop ends the heartbeat and waits for its goroutine. Safe to call twice.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.cancel()
	<-h.done
}
