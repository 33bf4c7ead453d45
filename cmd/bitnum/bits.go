package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bitnum/internal/bignum"
	"bitnum/internal/calc"
)

func newBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits EXPR",
		Short: "Show how a value is laid out as a bit sequence",
		Long: `Evaluate EXPR and dump its representation: the sign flag, the stored
bit count including high zero padding, and the bits walked from the least
significant end. Binary literals keep their leading zeros as padding:

  bitnum bits 0b000101`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := calc.Eval(cmd.Context(), args[0])
			if err != nil {
				printError(cmd.ErrOrStderr(), "", err)
				return errSilent
			}
			dumpBits(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func dumpBits(w io.Writer, v *bignum.BigInt) {
	row := func(name, format string, args ...any) {
		fmt.Fprintf(w, "%-10s %s\n", labelColor.Sprint(name), fmt.Sprintf(format, args...))
	}

	row("value", "%d", v)
	row("sign", "%+d (neg flag %v)", v.Sign(), v.Neg)
	row("len", "%d bits, %d significant, %d padding", v.Len(), v.BitLen(), v.Len()-v.BitLen())
	if v.Len() == 0 {
		row("bits", "%s", dimColor.Sprint("(empty)"))
		return
	}
	row("msb..lsb", "%s", groupBits(v.BinaryString()))

	var walk strings.Builder
	for c := v.LSB(); c.Valid(); c = c.Next() {
		if c.Index() > 0 && c.Index()%8 == 0 {
			walk.WriteByte(' ')
		}
		if c.Bit() {
			walk.WriteByte('1')
		} else {
			walk.WriteByte('0')
		}
	}
	row("lsb walk", "%s", walk.String())
	row("low word", "%d", v.LowWord())
	row("trailing", "%d zero bits", v.TrailingZeros())
}

// groupBits inserts a space every 8 bits counted from the right.
func groupBits(s string) string {
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%8 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	return b.String()
}
