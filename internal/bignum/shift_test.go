package bignum

import (
	"errors"
	"math/big"
	"testing"
)

func TestShift(t *testing.T) {
	a := FromInt64(100)
	if err := a.ShiftRight(2); err != nil {
		t.Fatalf("ShiftRight: %v", err)
	}
	if a.LowWord() != 25 {
		t.Fatalf("100 >> 2 = %d, want 25", a.LowWord())
	}
	if err := a.ShiftLeft(4); err != nil {
		t.Fatalf("ShiftLeft: %v", err)
	}
	if a.LowWord() != 400 {
		t.Fatalf("25 << 4 = %d, want 400", a.LowWord())
	}
}

func TestShiftMatchesArithmetic(t *testing.T) {
	for _, v := range sampleInts {
		for _, k := range []int{0, 1, 5, 63, 64, 65, 130} {
			pow := FromInt64(1)
			if err := pow.ShiftLeft(k); err != nil {
				t.Fatalf("ShiftLeft: %v", err)
			}

			left := FromInt64(v)
			if err := left.ShiftLeft(k); err != nil {
				t.Fatalf("ShiftLeft: %v", err)
			}
			prod, err := Mul(FromInt64(v), pow)
			if err != nil {
				t.Fatalf("Mul: %v", err)
			}
			if !left.Equal(prod) {
				t.Fatalf("%d << %d = %s, want %s", v, k, left, prod)
			}

			right := FromInt64(v)
			if err := right.ShiftRight(k); err != nil {
				t.Fatalf("ShiftRight: %v", err)
			}
			want := new(big.Int).Quo(big.NewInt(v), new(big.Int).Lsh(big.NewInt(1), uint(k)))
			checkBig(t, "ShiftRight", right, want)
		}
	}
}

func TestShiftEdgeCases(t *testing.T) {
	x := FromInt64(-5)
	if err := x.ShiftRight(100); err != nil {
		t.Fatalf("ShiftRight: %v", err)
	}
	if x.Len() != 0 || x.Neg {
		t.Fatalf("shifting out every bit left len=%d neg=%v", x.Len(), x.Neg)
	}
	if err := x.ShiftLeft(10); err != nil || x.Len() != 0 {
		t.Fatalf("shifting an empty value left: len=%d err=%v", x.Len(), err)
	}
	if err := x.ShiftLeft(-1); !errors.Is(err, ErrNegativeShift) {
		t.Fatalf("ShiftLeft(-1) err = %v", err)
	}
	if err := x.ShiftRight(-1); !errors.Is(err, ErrNegativeShift) {
		t.Fatalf("ShiftRight(-1) err = %v", err)
	}
}

func TestBinarySlice(t *testing.T) {
	a := mustParse(t, "-181") // 10110101
	tests := []struct {
		name    string
		lo, hi  int
		bits    string
		wantNeg bool
	}{
		{"whole", 0, 8, "10110101", true},
		{"low nibble", 0, 4, "0101", true},
		{"middle", 2, 6, "1101", true},
		{"past the end", 5, 40, "101", true},
		{"start past the end", 8, 12, "", false},
		{"negative start", -3, 2, "01", true},
		{"empty range", 4, 4, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BinarySlice(a, tt.lo, tt.hi)
			if got := s.BinaryString(); got != tt.bits {
				t.Fatalf("bits = %q, want %q", got, tt.bits)
			}
			if s.Neg != tt.wantNeg {
				t.Fatalf("Neg = %v, want %v", s.Neg, tt.wantNeg)
			}
		})
	}
	zeroSlice := BinarySlice(FromInt64(-256), 0, 4)
	if zeroSlice.Len() != 4 || !zeroSlice.Neg || zeroSlice.IsNeg() || zeroSlice.Sign() != 0 {
		t.Fatalf("all-zero slice: len=%d neg=%v sign=%d", zeroSlice.Len(), zeroSlice.Neg, zeroSlice.Sign())
	}
}

func TestReverse(t *testing.T) {
	x := FromInt64(0b1101000)
	x.Reverse()
	if got := x.BinaryString(); got != "0001011" {
		t.Fatalf("reversed bits = %s, want 0001011", got)
	}
	if !x.Equal(FromInt64(0b1011)) {
		t.Fatalf("reversed value = %s, want 11", x)
	}
	p := padded(t, FromInt64(1), 3)
	p.Neg = true
	p.Reverse()
	if got := p.BinaryString(); got != "1000" || !p.Equal(FromInt64(-8)) {
		t.Fatalf("reversed padded -1 = %s (%s)", p, got)
	}
}
