package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Tracer receives events from commands, batch jobs and arithmetic ops.
// Implementations must accept Emit from several goroutines at once.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	// Enabled reports Level() > LevelOff; span helpers check it first.
	Enabled() bool
}

// StorageMode is a set of destinations: a live stream, an in-memory ring, or both.
type StorageMode uint8

const (
	ModeStream StorageMode = 1 << iota
	ModeRing
	ModeBoth = ModeStream | ModeRing
)

var modeNames = map[string]StorageMode{
	"stream": ModeStream,
	"ring":   ModeRing,
	"both":   ModeBoth,
}

func (m StorageMode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return "unknown"
}

// ParseMode accepts stream, ring or both (case-insensitive).
func ParseMode(s string) (StorageMode, error) {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return ModeRing, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

// Config describes where bitnum trace events go.
type Config struct {
	Level      Level
	Mode       StorageMode
	Format     Format        // FormatAuto picks from OutputPath
	Output     io.Writer     // overrides OutputPath when set
	OutputPath string        // file path, "-" for stderr
	RingSize   int           // events kept by the ring, defaultRingSize when <= 0
	Heartbeat  time.Duration // 0 disables
}

// New builds the tracer for cfg. A LevelOff config yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.Mode == 0 || cfg.Mode&^ModeBoth != 0 {
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}

	var parts []Tracer
	if cfg.Mode&ModeStream != 0 {
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		format := cfg.Format
		if format == FormatAuto {
			format = DetectFormat(cfg.OutputPath)
		}
		parts = append(parts, NewStreamTracer(w, cfg.Level, format))
	}
	if cfg.Mode&ModeRing != 0 {
		size := cfg.RingSize
		if size <= 0 {
			size = defaultRingSize
		}
		parts = append(parts, NewRingTracer(size, cfg.Level))
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return NewMultiTracer(cfg.Level, parts...), nil
}

// RingOf digs the ring buffer out of t so a failed command can dump it.
func RingOf(t Tracer) *RingTracer {
	if r, ok := t.(*RingTracer); ok {
		return r
	}
	if m, ok := t.(*MultiTracer); ok {
		for _, inner := range m.tracers {
			if r := RingOf(inner); r != nil {
				return r
			}
		}
	}
	return nil
}

func openOutput(cfg Config) (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// nopCloser keeps Close from closing stderr.
type nopCloser struct{ io.Writer }
