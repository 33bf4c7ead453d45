package bignum

import (
	"math/big"
	"testing"
)

func TestFullAdderTruthTable(t *testing.T) {
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			for _, c := range []bool{false, true} {
				n := b2i(a) + b2i(b) + b2i(c)
				s, co := fullAdd(a, b, c)
				if b2i(s) != n&1 || b2i(co) != n>>1 {
					t.Fatalf("fullAdd(%v,%v,%v) = %v,%v", a, b, c, s, co)
				}
				d := b2i(a) - b2i(b) - b2i(c)
				diff, bo := fullSub(a, b, c)
				if b2i(diff) != d&1 || bo != (d < 0) {
					t.Fatalf("fullSub(%v,%v,%v) = %v,%v", a, b, c, diff, bo)
				}
			}
		}
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestAddLiterals(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{99, 365, 464},
		{-98765, -72, -98837},
		{5, -5, 0},
		{-5, 5, 0},
		{3, -10, -7},
		{-3, 10, 7},
		{0, -4, -4},
		{-4, 0, -4},
	}
	for _, tt := range tests {
		a := FromInt64(tt.a)
		if err := a.AddInPlace(FromInt64(tt.b)); err != nil {
			t.Fatalf("AddInPlace: %v", err)
		}
		got, ok := a.Int64()
		if !ok || got != tt.want {
			t.Fatalf("%d + %d = %s, want %d", tt.a, tt.b, a, tt.want)
		}
		if tt.want == 0 && a.Neg {
			t.Fatalf("%d + %d: zero result kept a negative sign", tt.a, tt.b)
		}
	}
}

func TestAddSelf(t *testing.T) {
	c := FromInt64(464)
	if err := c.AddInPlace(c); err != nil {
		t.Fatalf("AddInPlace: %v", err)
	}
	if c.LowWord() != 928 || !c.Equal(FromInt64(928)) {
		t.Fatalf("464 + itself = %s, want 928", c)
	}
	n := FromInt64(-21)
	if err := n.AddInPlace(n); err != nil {
		t.Fatalf("AddInPlace: %v", err)
	}
	if !n.Equal(FromInt64(-42)) {
		t.Fatalf("-21 + itself = %s, want -42", n)
	}
	z := New()
	if err := z.AddInPlace(z); err != nil || !z.IsZero() {
		t.Fatalf("0 + itself = %s, %v", z, err)
	}
}

func TestSubSelf(t *testing.T) {
	x := FromInt64(-12345)
	if err := x.SubInPlace(x); err != nil {
		t.Fatalf("SubInPlace: %v", err)
	}
	if !x.IsZero() || x.Neg {
		t.Fatalf("x - x = %s (neg=%v), want 0", x, x.Neg)
	}
}

func TestAddSubAgainstOracle(t *testing.T) {
	for _, a := range sampleInts {
		for _, b := range sampleInts {
			x, y := FromInt64(a), FromInt64(b)
			ba, bb := big.NewInt(a), big.NewInt(b)

			sum, err := Add(x, y)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			checkBig(t, "Add", sum, new(big.Int).Add(ba, bb))

			rev, err := Add(y, x)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if !sum.Equal(rev) {
				t.Fatalf("Add not commutative for %d, %d: %s vs %s", a, b, sum, rev)
			}

			diff, err := Sub(x, y)
			if err != nil {
				t.Fatalf("Sub: %v", err)
			}
			checkBig(t, "Sub", diff, new(big.Int).Sub(ba, bb))

			// (a + b) - b == a
			if err := sum.SubInPlace(y); err != nil {
				t.Fatalf("SubInPlace: %v", err)
			}
			if !sum.Equal(x) {
				t.Fatalf("(%d + %d) - %d = %s", a, b, b, sum)
			}
		}
	}
}

func TestAddSubWithPadding(t *testing.T) {
	for _, a := range sampleInts {
		for _, b := range sampleInts {
			x := padded(t, FromInt64(a), 7)
			y := padded(t, FromInt64(b), 66)
			want := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
			if err := x.AddInPlace(y); err != nil {
				t.Fatalf("AddInPlace: %v", err)
			}
			checkBig(t, "padded add", x, want)
			want.Sub(want, big.NewInt(b))
			if err := x.SubInPlace(y); err != nil {
				t.Fatalf("SubInPlace: %v", err)
			}
			checkBig(t, "padded sub", x, want)
		}
	}
}

func TestAddDoesNotMutateOperand(t *testing.T) {
	x, y := FromInt64(7), FromInt64(-1000)
	if err := x.AddInPlace(y); err != nil {
		t.Fatalf("AddInPlace: %v", err)
	}
	if !y.Equal(FromInt64(-1000)) {
		t.Fatalf("operand changed to %s", y)
	}
	if !x.Equal(FromInt64(-993)) {
		t.Fatalf("7 + -1000 = %s", x)
	}
}

func TestNegatedAbs(t *testing.T) {
	x := FromInt64(-17)
	if n := x.Negated(); !n.Equal(FromInt64(17)) {
		t.Fatalf("Negated = %s", n)
	}
	if a := x.Abs(); !a.Equal(FromInt64(17)) {
		t.Fatalf("Abs = %s", a)
	}
	if n := New().Negated(); n.Neg {
		t.Fatalf("-0 should stay positive")
	}
}
