package main

import (
	"context"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bitnum/internal/config"
	"bitnum/internal/observ"
)

// settings are bitnum.toml values with command-line overrides applied.
type settings struct {
	cfg     config.Config
	source  string // path of the file used, "" for defaults
	quiet   bool
	timings bool
	timer   *observ.Timer
	cleanup func()
}

type settingsKey struct{}

func withSettings(ctx context.Context, s *settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// settingsFrom returns the settings prepared for cmd, or defaults when the
// pre-run hook did not run.
func settingsFrom(cmd *cobra.Command) *settings {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
			return s
		}
	}
	return &settings{cfg: config.Default(), timer: observ.NewTimer(), cleanup: func() {}}
}

// prepare is the root PersistentPreRunE: it loads the settings file, applies
// flag overrides, sets up colour and tracing.
func prepare(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	applyColor(s.cfg.Output.Color)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cleanup, err := setupTracing(ctx, cmd, s.cfg)
	if err != nil {
		return err
	}
	s.cleanup = cleanup
	ctx = withSettings(ctx, s)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)
	return nil
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	s := &settings{timer: observ.NewTimer(), cleanup: func() {}}

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		s.cfg, err = config.Decode(path)
		if err != nil {
			return nil, err
		}
		s.source = path
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		file, found, err := config.Load(cwd)
		if err != nil {
			return nil, err
		}
		s.cfg = file.Config
		if found {
			s.source = file.Path
		}
	}

	// флаги, заданные явно, перекрывают файл
	if err := overrideString(cmd, "color", &s.cfg.Output.Color); err != nil {
		return nil, err
	}
	if flags.Changed("base") {
		if s.cfg.Output.Base, err = flags.GetInt("base"); err != nil {
			return nil, err
		}
	}
	if err := overrideString(cmd, "trace", &s.cfg.Trace.Output); err != nil {
		return nil, err
	}
	// --trace без уровня и режима: пишем поток на уровне команд
	if flags.Changed("trace") {
		if !flags.Changed("trace-level") && s.cfg.Trace.Level == "off" {
			s.cfg.Trace.Level = "command"
		}
		if !flags.Changed("trace-mode") && s.cfg.Trace.Mode == "ring" {
			s.cfg.Trace.Mode = "stream"
		}
	}
	if err := overrideString(cmd, "trace-level", &s.cfg.Trace.Level); err != nil {
		return nil, err
	}
	if err := overrideString(cmd, "trace-mode", &s.cfg.Trace.Mode); err != nil {
		return nil, err
	}
	if err := overrideString(cmd, "trace-format", &s.cfg.Trace.Format); err != nil {
		return nil, err
	}
	if flags.Changed("trace-ring-size") {
		n, err := flags.GetInt("trace-ring-size")
		if err != nil {
			return nil, err
		}
		s.cfg.Trace.RingSize = int64(n)
	}
	if flags.Changed("trace-heartbeat") {
		d, err := flags.GetDuration("trace-heartbeat")
		if err != nil {
			return nil, err
		}
		s.cfg.Trace.Heartbeat = d.String()
	}
	// batch-only flags exist on the batch command alone
	if err := overrideString(cmd, "ui", &s.cfg.Batch.UI); err != nil {
		return nil, err
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		jobs, err := flags.GetUint("jobs")
		if err != nil {
			return nil, err
		}
		if s.cfg.Batch.Jobs, err = safecast.Conv[int64](jobs); err != nil {
			return nil, fmt.Errorf("--jobs: %w", err)
		}
	}
	if flags.Lookup("fail-fast") != nil && flags.Changed("fail-fast") {
		if s.cfg.Batch.FailFast, err = flags.GetBool("fail-fast"); err != nil {
			return nil, err
		}
	}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func overrideString(cmd *cobra.Command, name string, dst *string) error {
	flags := cmd.Flags()
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	*dst = v
	return nil
}

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	labelColor  = color.New(color.FgCyan)
	resultColor = color.New(color.Bold)
	dimColor    = color.New(color.Faint)
)

// applyColor sets fatih/color's global switch from an auto|on|off mode.
func applyColor(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
	}
}
