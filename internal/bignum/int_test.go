package bignum

import (
	"math"
	"testing"
)

func TestFromInt64Layout(t *testing.T) {
	x := FromInt64(29)
	if x.Len() != 5 {
		t.Fatalf("Len = %d, want 5", x.Len())
	}
	if x.LowWord() != 29 {
		t.Fatalf("LowWord = %d, want 29", x.LowWord())
	}
	want := []bool{true, false, true, true, true}
	i := 0
	for c := x.LSB(); c.Valid(); c = c.Next() {
		if c.Bit() != want[i] {
			t.Fatalf("bit %d = %v, want %v", i, c.Bit(), want[i])
		}
		i++
	}
	i = len(want) - 1
	for c := x.MSB(); c.Valid(); c = c.Prev() {
		if c.Bit() != want[i] {
			t.Fatalf("backward bit %d = %v, want %v", i, c.Bit(), want[i])
		}
		i--
	}
	if x.MSB().TowardLSB(2) != x.LSB().TowardMSB(2) {
		t.Fatalf("middle bit differs between the two walks")
	}
	if x.LSB().TowardMSB(5).Valid() {
		t.Fatalf("walk past the MSB should be invalid")
	}
}

func TestFromInt64Zero(t *testing.T) {
	x := FromInt64(0)
	if x.Len() != 0 || !x.IsZero() || x.Sign() != 0 || x.LSB().Valid() || x.MSB().Valid() {
		t.Fatalf("zero should have no bits and no cursors: len=%d", x.Len())
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range sampleInts {
		x := FromInt64(v)
		got, ok := x.Int64()
		if !ok || got != v {
			t.Fatalf("FromInt64(%d).Int64() = %d, %v", v, got, ok)
		}
		if (v < 0) != x.IsNeg() {
			t.Fatalf("FromInt64(%d).IsNeg() = %v", v, x.IsNeg())
		}
	}
	huge := FromUint64(math.MaxUint64)
	if _, ok := huge.Int64(); ok {
		t.Fatalf("MaxUint64 should not fit int64")
	}
	if u, ok := huge.Uint64(); !ok || u != math.MaxUint64 {
		t.Fatalf("Uint64 = %d, %v", u, ok)
	}
	if err := huge.Append(true); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, ok := huge.Uint64(); ok {
		t.Fatalf("65-bit value should not fit uint64")
	}
	if got, ok := padded(t, FromInt64(-7), 100).Int64(); !ok || got != -7 {
		t.Fatalf("padded Int64 = %d, %v, want -7", got, ok)
	}
	if got := FromInt32(-5).Sign(); got != -1 {
		t.Fatalf("FromInt32(-5).Sign() = %d", got)
	}
}

func TestPrepend(t *testing.T) {
	a := FromInt64(55)
	if err := a.Prepend(false); err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	if !a.Equal(FromInt64(110)) {
		t.Fatalf("55 with a 0 prepended = %s, want 110", a)
	}
	b := FromInt64(110)
	if err := b.Prepend(true); err != nil {
		t.Fatalf("Prepend: %v", err)
	}
	if !b.Equal(FromInt64(221)) {
		t.Fatalf("110 with a 1 prepended = %s, want 221", b)
	}
}

func TestPop(t *testing.T) {
	a := FromInt64(100)
	if a.PopLSB() {
		t.Fatalf("PopLSB(100) = true, want false")
	}
	if a.LowWord() != 50 {
		t.Fatalf("after PopLSB = %d, want 50", a.LowWord())
	}
	if !a.PopMSB() {
		t.Fatalf("PopMSB(50) = false, want true")
	}
	if a.LowWord() != 18 {
		t.Fatalf("after PopMSB = %d, want 18", a.LowWord())
	}

	n := FromInt64(-1)
	n.PopLSB()
	if n.Len() != 0 || n.Neg {
		t.Fatalf("popping the last bit should leave canonical zero, got len=%d neg=%v", n.Len(), n.Neg)
	}
}

func TestCopyIsDeep(t *testing.T) {
	a := FromInt64(99999)
	c := a.Copy()
	if c.LowWord() != 99999 || !a.Equal(c) {
		t.Fatalf("copy = %s, want 99999", c)
	}
	if err := c.AddInPlace(FromInt64(1)); err != nil {
		t.Fatalf("AddInPlace: %v", err)
	}
	if a.LowWord() != 99999 {
		t.Fatalf("mutating the copy changed the original to %d", a.LowWord())
	}
	var z BigInt
	z.Set(a)
	a.Release()
	if z.LowWord() != 99999 || !a.IsZero() || a.Len() != 0 {
		t.Fatalf("Set/Release: z=%s a=%s", &z, a)
	}
}

func TestSwap(t *testing.T) {
	a, b := FromInt64(-3), FromInt64(12345)
	a.Swap(b)
	if !a.Equal(FromInt64(12345)) || !b.Equal(FromInt64(-3)) {
		t.Fatalf("Swap: a=%s b=%s", a, b)
	}
}

func TestLowWord(t *testing.T) {
	x := mustParse(t, "-12345678900987654321")
	if got := uint32(x.LowWord()); got != 3697766577 {
		t.Fatalf("low word = %d, want 3697766577", got)
	}
	if err := x.ShiftRight(32); err != nil {
		t.Fatalf("ShiftRight: %v", err)
	}
	if got := uint32(x.LowWord()); got != 2874452364 {
		t.Fatalf("next word = %d, want 2874452364", got)
	}
	if got := padded(t, FromInt64(29), 40).LowWord(); got != 29 {
		t.Fatalf("padded LowWord = %d, want 29", got)
	}
}

func TestRemoveHighZeroBits(t *testing.T) {
	x := padded(t, FromInt64(-6), 9)
	if got := x.RemoveHighZeroBits(); got != 9 {
		t.Fatalf("removed %d bits, want 9", got)
	}
	if x.Len() != 3 || !x.Equal(FromInt64(-6)) {
		t.Fatalf("after normalize: len=%d value=%s", x.Len(), x)
	}
	z := padded(t, New(), 4)
	z.Neg = true
	if got := z.RemoveHighZeroBits(); got != 4 || z.Len() != 0 || z.Neg {
		t.Fatalf("normalizing padded zero: removed=%d len=%d neg=%v", got, z.Len(), z.Neg)
	}
}

func TestTrailingZeros(t *testing.T) {
	tests := []struct {
		v    int64
		want int
	}{
		{0, 0},
		{1, 0},
		{8, 3},
		{-96, 5},
		{1 << 40, 40},
	}
	for _, tt := range tests {
		if got := FromInt64(tt.v).TrailingZeros(); got != tt.want {
			t.Fatalf("TrailingZeros(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
