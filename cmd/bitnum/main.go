package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bitnum/internal/version"
)

// errSilent marks failures whose details were already printed.
var errSilent = errors.New("")

// newRootCmd builds the command tree. Tests build a fresh one per case.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bitnum",
		Short: "Arbitrary-precision integers stored bit by bit",
		Long: `bitnum evaluates integer expressions of unbounded size.
Numbers are kept as sequences of bits and every operation works on them
bit by bit: ripple-carry add and subtract, shift-and-add multiply and
restoring long division.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: prepare,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "path to bitnum.toml (default: search upward from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("base", 10, "output base (2|10)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|command|job|op)")
	pf.String("trace-mode", "ring", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept by the trace ring buffer")
	pf.Duration("trace-heartbeat", 0, "emit a trace heartbeat at this interval (0 = off)")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newFactCmd())
	root.AddCommand(newBitsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// main runs the CLI; any error from a command exits with status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		// первый Ctrl-C отменяет контекст, второй снова убивает процесс
		<-ctx.Done()
		stop()
	}()
	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	finish(root, err)
	if err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, errorColor.Sprint("error: ")+err.Error())
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
