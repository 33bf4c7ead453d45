package bignum

// ShiftLeft prepends n zero bits, multiplying the magnitude by 2^n.
// An empty value stays empty.
func (x *BigInt) ShiftLeft(n int) error {
	if n < 0 {
		return ErrNegativeShift
	}
	if x.mag.n == 0 {
		return nil
	}
	return x.mag.ShiftUp(n)
}

// ShiftRight pops n bits from the least significant end, dividing the
// magnitude by 2^n and discarding the remainder. Shifting out every bit
// empties x.
func (x *BigInt) ShiftRight(n int) error {
	if n < 0 {
		return ErrNegativeShift
	}
	x.mag.ShiftDown(n)
	x.settle()
	x.canon()
	return nil
}

// BinarySlice returns the bits of a in [lo, hi) as a new value. The range is
// cut short at the end of a, and a start beyond the end yields an empty
// value. A non-empty slice carries the Neg flag of a whatever its content,
// so an all-zero slice of a negative value has Neg set yet IsNeg reports
// false. An empty slice is canonical zero and positive.
func BinarySlice(a *BigInt, lo, hi int) *BigInt {
	out := New()
	if lo < 0 {
		lo = 0
	}
	c := a.mag.First().TowardMSB(lo)
	for i := lo; i < hi && c.Valid(); i++ {
		// The slice is never longer than a.
		_ = out.mag.Append(c.Bit())
		c = c.Next()
	}
	if out.mag.n > 0 {
		out.Neg = a.Neg
	}
	return out
}

// Reverse reverses the order of the bits of x in place, padding included.
func (x *BigInt) Reverse() {
	x.mag.Reverse()
	x.canon()
}
