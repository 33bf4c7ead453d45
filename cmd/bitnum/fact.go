package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitnum/internal/bignum"
)

func newFactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fact N",
		Short: "Print N! computed with bit-serial multiplication",
		Args:  cobra.ExactArgs(1),
		RunE:  runFact,
	}
	cmd.Flags().Bool("digits", false, "print the digit and bit counts instead of the value")
	return cmd
}

func runFact(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)
	digitsOnly, err := cmd.Flags().GetBool("digits")
	if err != nil {
		return err
	}

	idx := s.timer.Begin("parse")
	n, err := bignum.Parse(args[0])
	s.timer.End(idx, "")
	if err != nil {
		return err
	}

	idx = s.timer.Begin("fact")
	f, err := bignum.FactorialContext(cmd.Context(), n)
	if err != nil {
		s.timer.End(idx, "failed")
		return fmt.Errorf("%s!: %w", n, err)
	}
	s.timer.End(idx, fmt.Sprintf("%d bits", f.BitLen()))

	idx = s.timer.Begin("format")
	text, err := formatValue(f, s.cfg.Output.Base)
	s.timer.End(idx, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if digitsOnly {
		fmt.Fprintf(out, "%s! has %d digits in base %d, %d bits\n", n, len(text), s.cfg.Output.Base, f.BitLen())
	} else {
		fmt.Fprintln(out, resultColor.Sprint(text))
	}
	printTimings(cmd.ErrOrStderr(), s)
	return nil
}
