// Package trace records what bitnum is doing while it evaluates.
//
// Spans are opened around CLI commands, batch jobs and individual bignum
// operations so a slow factorial or a stuck batch can be seen from outside.
//
// # Usage
//
//	bitnum eval --trace=- --trace-level=op "fact(200) / fact(198)"
//
// # Tracers
//
//   - Nop: used when tracing is off
//   - StreamTracer: writes every event as it happens
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelCommand emits ScopeCommand events only, LevelJob adds ScopeJob and
// LevelOp adds ScopeOp. LevelError keeps nothing live; the ring is dumped
// when a command fails.
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeJob, "job:3", parentID)
//	defer span.End("")
package trace
