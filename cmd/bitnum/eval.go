package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bitnum/internal/calc"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate integer expressions",
		Long: `Evaluate one or more expressions and print each value.

Operators: + - * / % << >> and postfix ! (factorial).
/ and % are Euclidean: the remainder is never negative.
Literals: decimal with optional '_' separators, or 0b binary.
Functions: abs neg fact div mod quo rem cmp shl shr slice rev low len bitlen trim`,
		Example: `  bitnum eval "fact(25) / fact(23)"
  bitnum eval --base 2 "0b1011 << 3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	cmd.Flags().Bool("echo", false, "print each expression before its value")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	s := settingsFrom(cmd)
	echo, err := cmd.Flags().GetBool("echo")
	if err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	failed := 0
	for _, src := range args {
		idx := s.timer.Begin("eval")
		v, err := calc.Eval(cmd.Context(), src)
		if err == nil {
			var text string
			text, err = formatValue(v, s.cfg.Output.Base)
			if err == nil {
				if echo {
					fmt.Fprintf(out, "%s = ", labelColor.Sprint(src))
				}
				fmt.Fprintln(out, resultColor.Sprint(text))
			}
		}
		s.timer.End(idx, "")
		if err != nil {
			failed++
			printError(errOut, "", err)
		}
	}
	printTimings(errOut, s)
	if failed > 0 {
		return errSilent
	}
	return nil
}
