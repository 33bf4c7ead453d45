package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bitnum/internal/config"
	"bitnum/internal/trace"
)

// setupTracing creates the tracer described by cfg, attaches it to ctx and
// opens the command span. The returned cleanup ends the span, stops the
// heartbeat and closes the tracer.
func setupTracing(ctx context.Context, cmd *cobra.Command, cfg config.Config) (context.Context, func(), error) {
	tc, err := cfg.TracerConfig()
	if err != nil {
		return ctx, nil, fmt.Errorf("invalid trace settings: %w", err)
	}
	if tc.Level == trace.LevelOff {
		return trace.WithTracer(ctx, trace.Nop), func() {}, nil
	}

	tracer, err := trace.New(tc)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	ctx = trace.WithTracer(ctx, tracer)
	ctx, span := trace.Start(ctx, trace.ScopeCommand, cmd.CommandPath())
	heartbeat := trace.StartHeartbeat(tracer, tc.Heartbeat)

	cleanup := func() {
		span.End("")
		heartbeat.Stop()
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return ctx, cleanup, nil
}

// finish runs after the command: on failure the trace ring, if any, is
// dumped to stderr before the tracer is closed.
func finish(root *cobra.Command, cmdErr error) {
	s := settingsFrom(root)
	if cmdErr != nil {
		if ring := trace.RingOf(trace.FromContext(root.Context())); ring != nil {
			header := "-- trace ring --"
			if n := ring.Dropped(); n > 0 {
				header = fmt.Sprintf("-- trace ring, %d earlier events dropped --", n)
			}
			fmt.Fprintln(os.Stderr, dimColor.Sprint(header))
			if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
				fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
			}
		}
	}
	s.cleanup()
}
