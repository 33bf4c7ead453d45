package bignum

// cmpBits compares two magnitudes of possibly different lengths.
//
// The extra high bits of the longer sequence are scanned first; any set bit
// there decides for the longer one. Then the common low part is compared
// from the most significant position down.
func cmpBits(a, b *Bits) int {
	if a == b {
		return 0
	}
	if b.n > a.n {
		return -cmpBits(b, a)
	}
	ca := a.Last()
	for i := a.n; i > b.n; i-- {
		if ca.Bit() {
			return 1
		}
		ca = ca.Prev()
	}
	cb := b.Last()
	for ca.Valid() && cb.Valid() {
		av, bv := ca.Bit(), cb.Bit()
		switch {
		case av && !bv:
			return 1
		case bv && !av:
			return -1
		}
		ca, cb = ca.Prev(), cb.Prev()
	}
	return 0
}

// CmpAbs compares |a| and |b| and returns -1, 0, or 1.
func CmpAbs(a, b *BigInt) int {
	return cmpBits(&a.mag, &b.mag)
}

// Cmp compares a and b and returns -1, 0, or 1.
//
// Zero counts as positive for the sign rule, so it is greater than every
// negative value.
func Cmp(a, b *BigInt) int {
	if a == b {
		return 0
	}
	an, bn := a.IsNeg(), b.IsNeg()
	switch {
	case !an && bn:
		return 1
	case an && !bn:
		return -1
	}
	c := CmpAbs(a, b)
	if an {
		return -c
	}
	return c
}

// Cmp compares x with y.
func (x *BigInt) Cmp(y *BigInt) int { return Cmp(x, y) }

// Equal reports whether x and y hold the same value, ignoring zero padding.
func (x *BigInt) Equal(y *BigInt) bool { return Cmp(x, y) == 0 }
