package bignum

import (
	"errors"
	"math/big"
	"testing"
)

func TestMulLiterals(t *testing.T) {
	p, err := Mul(FromInt64(199), FromInt64(305))
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if p.LowWord() != 60695 || !p.Equal(FromInt64(60695)) {
		t.Fatalf("199 * 305 = %s, want 60695", p)
	}

	b := FromInt64(305)
	if err := b.MulInPlace(b); err != nil {
		t.Fatalf("MulInPlace: %v", err)
	}
	if !b.Equal(FromInt64(93025)) {
		t.Fatalf("305 * itself = %s, want 93025", b)
	}
}

func TestMulSignsAndZero(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{-3, 4, -12},
		{3, -4, -12},
		{-3, -4, 12},
		{0, -4, 0},
		{-4, 0, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		p, err := Mul(FromInt64(tt.a), FromInt64(tt.b))
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if got, ok := p.Int64(); !ok || got != tt.want {
			t.Fatalf("%d * %d = %s, want %d", tt.a, tt.b, p, tt.want)
		}
		if tt.want == 0 && (p.Neg || p.Sign() != 0) {
			t.Fatalf("%d * %d: zero product is not positive", tt.a, tt.b)
		}
	}
}

func TestMulAgainstOracle(t *testing.T) {
	for _, a := range sampleInts {
		for _, b := range sampleInts {
			x, y := FromInt64(a), FromInt64(b)
			p, err := Mul(x, y)
			if err != nil {
				t.Fatalf("Mul: %v", err)
			}
			checkBig(t, "Mul", p, new(big.Int).Mul(big.NewInt(a), big.NewInt(b)))
			q, err := Mul(y, x)
			if err != nil {
				t.Fatalf("Mul: %v", err)
			}
			if !p.Equal(q) {
				t.Fatalf("Mul not commutative for %d, %d", a, b)
			}
		}
	}
}

func TestDivModLiteral(t *testing.T) {
	q, r, err := DivMod(FromInt64(987653), FromInt64(10))
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	if !q.Equal(FromInt64(98765)) || !r.Equal(FromInt64(3)) {
		t.Fatalf("987653 / 10 = %s r %s, want 98765 r 3", q, r)
	}

	x := FromInt64(987653)
	rem, err := x.DivModInPlace(FromInt64(10))
	if err != nil {
		t.Fatalf("DivModInPlace: %v", err)
	}
	if !x.Equal(FromInt64(98765)) || !rem.Equal(FromInt64(3)) {
		t.Fatalf("in place: %s r %s", x, rem)
	}
}

func TestDivModAgainstOracle(t *testing.T) {
	for _, a := range sampleInts {
		for _, b := range sampleInts {
			if b == 0 {
				continue
			}
			x, d := FromInt64(a), padded(t, FromInt64(b), 3)
			ba, bb := big.NewInt(a), big.NewInt(b)

			q, r, err := DivMod(x, d)
			if err != nil {
				t.Fatalf("DivMod: %v", err)
			}
			wq, wr := new(big.Int).DivMod(ba, bb, new(big.Int))
			checkBig(t, "DivMod quotient", q, wq)
			checkBig(t, "DivMod remainder", r, wr)
			if r.IsNeg() || CmpAbs(r, d) >= 0 {
				t.Fatalf("remainder %s out of range for %d / %d", r, a, b)
			}

			// q*d + r == a
			back, err := Mul(q, d)
			if err != nil {
				t.Fatalf("Mul: %v", err)
			}
			if err := back.AddInPlace(r); err != nil {
				t.Fatalf("AddInPlace: %v", err)
			}
			if !back.Equal(x) {
				t.Fatalf("%s * %d + %s = %s, want %d", q, b, r, back, a)
			}

			tq, tr, err := QuoRem(x, d)
			if err != nil {
				t.Fatalf("QuoRem: %v", err)
			}
			wtq, wtr := new(big.Int).QuoRem(ba, bb, new(big.Int))
			checkBig(t, "QuoRem quotient", tq, wtq)
			checkBig(t, "QuoRem remainder", tr, wtr)
		}
	}
}

func TestDivSelf(t *testing.T) {
	x := FromInt64(-77)
	q, r, err := DivMod(x, x)
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	if !q.Equal(FromInt64(1)) || !r.IsZero() {
		t.Fatalf("x / x = %s r %s", q, r)
	}
	if !x.Equal(FromInt64(-77)) {
		t.Fatalf("operand changed to %s", x)
	}
}

func TestDivByZero(t *testing.T) {
	zeros := []*BigInt{New(), padded(t, New(), 12)}
	for _, z := range zeros {
		if _, _, err := DivMod(FromInt64(5), z); !errors.Is(err, ErrDivByZero) {
			t.Fatalf("DivMod err = %v, want ErrDivByZero", err)
		}
		if _, err := Mod(FromInt64(5), z); !errors.Is(err, ErrDivByZero) {
			t.Fatalf("Mod err = %v, want ErrDivByZero", err)
		}
		if _, err := Div(FromInt64(5), z); !errors.Is(err, ErrDivByZero) {
			t.Fatalf("Div err = %v, want ErrDivByZero", err)
		}
		if _, err := Rem(FromInt64(5), z); !errors.Is(err, ErrDivByZero) {
			t.Fatalf("Rem err = %v, want ErrDivByZero", err)
		}
		x := FromInt64(5)
		if _, err := x.DivModInPlace(z); !errors.Is(err, ErrDivByZero) {
			t.Fatalf("DivModInPlace err = %v, want ErrDivByZero", err)
		}
		if !x.Equal(FromInt64(5)) {
			t.Fatalf("failed division changed the dividend to %s", x)
		}
	}
}

func TestModLarge(t *testing.T) {
	a := mustParse(t, "-123456789012345678901234567890")
	d := mustParse(t, "9876543210987")
	r, err := Mod(a, d)
	if err != nil {
		t.Fatalf("Mod: %v", err)
	}
	ba, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	bd, _ := new(big.Int).SetString("9876543210987", 10)
	checkBig(t, "Mod", r, new(big.Int).Mod(ba, bd))
}
