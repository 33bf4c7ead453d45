package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bitnum/internal/batch"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [FILE...]",
		Short: "Evaluate one expression per line, concurrently",
		Long: `Read expressions from files (or stdin when no file or "-" is given),
one per line, and evaluate them on a pool of workers. Blank lines and lines
starting with '#' are skipped. Results are printed in input order as
"file:line<TAB>value".`,
		RunE: runBatch,
	}
	cmd.Flags().Uint("jobs", 0, "max parallel evaluations (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().Bool("fail-fast", false, "stop at the first failing line")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)
	mode, err := readUIMode(s.cfg.Batch.UI)
	if err != nil {
		return err
	}
	jobs, err := s.cfg.Jobs()
	if err != nil {
		return err
	}

	idx := s.timer.Begin("read")
	items, err := readBatchInputs(cmd.InOrStdin(), args)
	s.timer.End(idx, fmt.Sprintf("%d lines", len(items)))
	if err != nil {
		return err
	}

	req := batch.Request{
		Items:    items,
		Jobs:     jobs,
		Base:     s.cfg.Output.Base,
		FailFast: s.cfg.Batch.FailFast,
		Timer:    s.timer,
	}

	idx = s.timer.Begin("batch")
	var res batch.Result
	if shouldUseTUI(mode, s.quiet, len(items)) {
		res, err = runBatchWithUI(cmd.Context(), "bitnum batch", req)
	} else {
		res, err = batch.Run(cmd.Context(), req)
	}
	s.timer.End(idx, fmt.Sprintf("%d items, %d jobs", len(items), jobs))

	printBatchResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), res)
	printTimings(cmd.ErrOrStderr(), s)

	switch {
	case err != nil && errors.Is(err, batch.ErrItemFailed):
		return errSilent
	case err != nil:
		return err
	case res.Failed > 0:
		if !s.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d lines failed\n", res.Failed, len(res.Items))
		}
		return errSilent
	}
	return nil
}

func readBatchInputs(stdin io.Reader, args []string) ([]batch.Item, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var items []batch.Item
	for _, arg := range args {
		if arg == "-" {
			got, err := batch.ReadItems(stdin, "stdin")
			if err != nil {
				return nil, err
			}
			items = append(items, got...)
			continue
		}
		got, err := readBatchFile(arg)
		if err != nil {
			return nil, err
		}
		items = append(items, got...)
	}
	return items, nil
}

func readBatchFile(path string) ([]batch.Item, error) {
	// #nosec G304 -- the path is a user-supplied input file
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		// файл только читается, ошибку закрытия можно игнорировать
		_ = f.Close()
	}()
	return batch.ReadItems(f, filepath.Base(path))
}

func printBatchResults(out, errOut io.Writer, res batch.Result) {
	for _, r := range res.Items {
		switch {
		case r.Err != nil:
			printError(errOut, r.Label, r.Err)
		case r.Label == "":
			// элемент не запускался (fail-fast отменил группу раньше)
		default:
			fmt.Fprintf(out, "%s\t%s\n", labelColor.Sprint(r.Label), resultColor.Sprint(r.Output))
		}
	}
}
