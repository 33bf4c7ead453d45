package bignum

import (
	"fortio.org/safecast"
)

// BigInt represents a big signed integer.
type BigInt struct {
	// Neg is the sign flag. A zero value is always reported as positive,
	// whatever Neg holds.
	Neg bool
	// mag is the magnitude, least significant bit first.
	//
	// Canonical zero is an empty sequence with Neg=false.
	mag Bits
}

// New returns a zero BigInt with no bits.
func New() *BigInt { return &BigInt{} }

// FromInt64 creates a BigInt from an int64 by repeated halving of its
// magnitude.
func FromInt64(v int64) *BigInt {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	u++
	x := FromUint64(u)
	x.Neg = true
	return x
}

// FromInt32 creates a BigInt from a 32-bit machine integer.
func FromInt32(v int32) *BigInt { return FromInt64(int64(v)) }

// FromUint64 creates a BigInt from a uint64.
func FromUint64(v uint64) *BigInt {
	x := New()
	for v > 0 {
		// 64 bits never reach MaxBits.
		_ = x.mag.Append(v&1 == 1)
		v >>= 1
	}
	return x
}

// Len returns the number of bits held, including any high zero padding.
func (x *BigInt) Len() int { return x.mag.n }

// BitLen returns the minimal number of bits needed for the magnitude.
func (x *BigInt) BitLen() int { return x.mag.BitLen() }

// IsZero reports whether the value is zero.
func (x *BigInt) IsZero() bool { return x.mag.isZero() }

// IsNeg reports whether the value is strictly negative.
func (x *BigInt) IsNeg() bool { return x.Neg && !x.IsZero() }

// Sign returns -1, 0 or +1.
func (x *BigInt) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.Neg:
		return -1
	default:
		return 1
	}
}

// Bit returns magnitude bit i (false outside the sequence).
func (x *BigInt) Bit(i int) bool { return x.mag.At(i) }

// LSB returns a cursor at the least significant bit.
func (x *BigInt) LSB() Cursor { return x.mag.First() }

// MSB returns a cursor at the most significant bit.
func (x *BigInt) MSB() Cursor { return x.mag.Last() }

// Append adds b as the new most significant bit.
func (x *BigInt) Append(b bool) error { return x.mag.Append(b) }

// Prepend adds b as the new least significant bit, doubling the magnitude
// and adding b.
func (x *BigInt) Prepend(b bool) error { return x.mag.Prepend(b) }

// PopMSB removes and returns the most significant bit.
func (x *BigInt) PopMSB() bool {
	b := x.mag.PopMSB()
	x.settle()
	return b
}

// PopLSB removes and returns the least significant bit.
func (x *BigInt) PopLSB() bool {
	b := x.mag.PopLSB()
	x.settle()
	return b
}

// Copy returns a deep copy: the result owns a separate bit sequence.
func (x *BigInt) Copy() *BigInt {
	return &BigInt{Neg: x.Neg, mag: x.mag.Clone()}
}

// Set makes x a deep copy of y and returns x.
func (x *BigInt) Set(y *BigInt) *BigInt {
	if x == y {
		return x
	}
	x.Neg = y.Neg
	x.mag = y.mag.Clone()
	return x
}

// Swap exchanges the contents of x and y without copying bits.
func (x *BigInt) Swap(y *BigInt) {
	*x, *y = *y, *x
}

// Release drops every bit x owns and leaves x as canonical zero.
func (x *BigInt) Release() {
	x.mag.Reset()
	x.Neg = false
}

// RemoveHighZeroBits pops zero bits from the most significant end and
// returns how many were removed.
func (x *BigInt) RemoveHighZeroBits() int {
	n := x.mag.TrimHigh()
	x.settle()
	return n
}

// LowWord returns the low 32 bits of the magnitude reinterpreted as a
// two's-complement int32. The sign of x is not applied.
func (x *BigInt) LowWord() int32 {
	var w uint32
	for c := x.mag.First(); c.Valid() && c.Index() < 32; c = c.Next() {
		if c.Bit() {
			w |= 1 << uint(c.Index())
		}
	}
	return int32(w) //nolint:gosec // G115: two's-complement reinterpretation is intended.
}

// Uint64 returns the magnitude as uint64 if it fits.
func (x *BigInt) Uint64() (uint64, bool) {
	if x.mag.BitLen() > 64 {
		return 0, false
	}
	if len(x.mag.words) == 0 {
		return 0, true
	}
	return x.mag.words[0], true
}

// Int64 converts x to int64 if possible.
func (x *BigInt) Int64() (int64, bool) {
	mag, ok := x.Uint64()
	if !ok {
		return 0, false
	}
	if !x.IsNeg() {
		v, err := safecast.Conv[int64](mag)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	// Negative: allow magnitude up to 2^63.
	if mag == uint64(1)<<63 {
		return -1 << 63, true
	}
	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, false
	}
	return -v, true
}

// TrailingZeros returns the number of zero bits below the lowest set bit,
// or 0 for zero.
func (x *BigInt) TrailingZeros() int {
	for c := x.mag.First(); c.Valid(); c = c.Next() {
		if c.Bit() {
			return c.Index()
		}
	}
	return 0
}

// settle keeps the zero-is-positive convention once the sequence is empty.
func (x *BigInt) settle() {
	if x.mag.n == 0 {
		x.mag.Reset()
		x.Neg = false
	}
}

// canon makes a zero result positive without touching its bits.
func (x *BigInt) canon() {
	if x.mag.isZero() {
		x.Neg = false
	}
}
