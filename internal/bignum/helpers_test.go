package bignum

import (
	"math"
	"math/big"
	"testing"
)

// sampleInts covers both signs, word boundaries and the int64 extremes.
var sampleInts = []int64{
	0, 1, -1, 2, -2, 3, 7, -8, 10, 29, 99, -99, 365, 464, -72, -98765,
	1 << 31, -(1 << 32), 1<<40 + 3, -(1 << 62), math.MaxInt64, math.MinInt64,
}

// toBig rebuilds x bit by bit so the oracle does not depend on String.
func toBig(x *BigInt) *big.Int {
	out := new(big.Int)
	for i := 0; i < x.Len(); i++ {
		if x.Bit(i) {
			out.SetBit(out, i, 1)
		}
	}
	if x.IsNeg() {
		out.Neg(out)
	}
	return out
}

// padded returns a copy of x with k extra high zero bits.
func padded(t *testing.T, x *BigInt, k int) *BigInt {
	t.Helper()
	p := x.Copy()
	for range k {
		if err := p.Append(false); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	return p
}

func mustParse(t *testing.T, s string) *BigInt {
	t.Helper()
	x, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return x
}

func checkBig(t *testing.T, what string, got *BigInt, want *big.Int) {
	t.Helper()
	if g := toBig(got); g.Cmp(want) != 0 {
		t.Fatalf("%s = %s, want %s", what, g, want)
	}
	if got.IsZero() && got.Sign() != 0 {
		t.Fatalf("%s: zero has sign %d", what, got.Sign())
	}
}
