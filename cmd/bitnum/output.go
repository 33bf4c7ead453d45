package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"bitnum/internal/batch"
	"bitnum/internal/bignum"
	"bitnum/internal/calc"
)

// formatValue renders v in the configured base, signed in both bases.
func formatValue(v *bignum.BigInt, base int) (string, error) {
	if base != 2 && base != 10 {
		return "", fmt.Errorf("%w: %d", bignum.ErrBase, base)
	}
	return batch.FormatValue(v, base), nil
}

// printError writes err for expression src, with a caret under the
// failing position when the error carries one.
func printError(w io.Writer, label string, err error) {
	prefix := errorColor.Sprint("error")
	if label != "" {
		prefix += " " + labelColor.Sprint(label)
	}
	var cerr *calc.Error
	if !errors.As(err, &cerr) {
		fmt.Fprintf(w, "%s: %v\n", prefix, err)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", prefix, cerr.Msg)
	for _, line := range strings.Split(cerr.Caret(), "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}

func printTimings(w io.Writer, s *settings) {
	if !s.timings {
		return
	}
	fmt.Fprint(w, dimColor.Sprint(s.timer.Summary()))
}
