// Package config loads bitnum.toml, the optional per-directory settings
// file. Command-line flags override whatever it sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"bitnum/internal/trace"
)

// FileName is the settings file looked up from the working directory upward.
const FileName = "bitnum.toml"

// Config mirrors the sections of bitnum.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
	Trace  TraceConfig  `toml:"trace"`
}

// OutputConfig is the [output] section.
type OutputConfig struct {
	Base  int    `toml:"base"`  // 2 or 10
	Color string `toml:"color"` // auto|on|off
}

// BatchConfig is the [batch] section.
type BatchConfig struct {
	Jobs     int64  `toml:"jobs"`      // 0 = GOMAXPROCS
	UI       string `toml:"ui"`        // auto|on|off
	FailFast bool   `toml:"fail_fast"` // stop at first failing line
}

// TraceConfig is the [trace] section.
type TraceConfig struct {
	Level     string `toml:"level"`     // off|error|command|job|op
	Output    string `toml:"output"`    // path, "-" for stderr
	Mode      string `toml:"mode"`      // stream|ring|both
	Format    string `toml:"format"`    // auto|text|ndjson
	RingSize  int64  `toml:"ring_size"` // events kept in ring mode
	Heartbeat string `toml:"heartbeat"` // e.g. "1s", empty = off
}

// File is a located and decoded settings file.
type File struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Base: 10, Color: "auto"},
		Batch:  BatchConfig{UI: "auto"},
		Trace:  TraceConfig{Level: "off", Output: "-", Mode: "ring", Format: "auto", RingSize: 4096},
	}
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the settings file above startDir. When there is
// none it returns defaults and false.
func Load(startDir string) (*File, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return &File{Config: Default()}, false, err
	}
	cfg, err := Decode(path)
	if err != nil {
		return nil, true, err
	}
	return &File{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Decode reads one settings file. Keys it sets replace defaults; unknown
// keys are an error so typos do not pass silently.
func Decode(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown key(s): %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("trace", "output") && strings.TrimSpace(cfg.Trace.Output) == "" {
		return Config{}, fmt.Errorf("%s: [trace].output must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every value that has a closed set of choices.
func (c Config) Validate() error {
	if c.Output.Base != 2 && c.Output.Base != 10 {
		return fmt.Errorf("[output].base must be 2 or 10, got %d", c.Output.Base)
	}
	if err := checkSwitch("[output].color", c.Output.Color); err != nil {
		return err
	}
	if err := checkSwitch("[batch].ui", c.Batch.UI); err != nil {
		return err
	}
	if _, err := c.Jobs(); err != nil {
		return err
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	if _, err := c.RingSize(); err != nil {
		return err
	}
	if _, err := c.Heartbeat(); err != nil {
		return err
	}
	return nil
}

// Jobs returns [batch].jobs as a worker count.
func (c Config) Jobs() (uint, error) {
	n, err := safecast.Conv[uint](c.Batch.Jobs)
	if err != nil {
		return 0, fmt.Errorf("[batch].jobs must be >= 0, got %d", c.Batch.Jobs)
	}
	return n, nil
}

// RingSize returns [trace].ring_size as an int.
func (c Config) RingSize() (int, error) {
	n, err := safecast.Conv[int](c.Trace.RingSize)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("[trace].ring_size out of range: %d", c.Trace.RingSize)
	}
	return n, nil
}

// Heartbeat returns the [trace].heartbeat interval, 0 when unset.
func (c Config) Heartbeat() (time.Duration, error) {
	if strings.TrimSpace(c.Trace.Heartbeat) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Trace.Heartbeat)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("[trace].heartbeat: invalid duration %q", c.Trace.Heartbeat)
	}
	return d, nil
}

// TracerConfig builds the tracer settings described by the [trace] section.
func (c Config) TracerConfig() (trace.Config, error) {
	level, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.Config{}, err
	}
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		return trace.Config{}, err
	}
	format, err := trace.ParseFormat(c.Trace.Format)
	if err != nil {
		return trace.Config{}, err
	}
	ring, err := c.RingSize()
	if err != nil {
		return trace.Config{}, err
	}
	hb, err := c.Heartbeat()
	if err != nil {
		return trace.Config{}, err
	}
	return trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: c.Trace.Output,
		RingSize:   ring,
		Heartbeat:  hb,
	}, nil
}

func checkSwitch(key, v string) error {
	switch v {
	case "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("%s must be auto, on or off, got %q", key, v)
	}
}
