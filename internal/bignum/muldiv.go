package bignum

// Mul returns a * b computed by shift-and-add.
//
// A copy of |a| is added into the running product once for every set bit of
// b and doubled after each bit. A zero multiplicand returns zero without
// scanning b.
func Mul(a, b *BigInt) (*BigInt, error) {
	product := New()
	if a.IsZero() {
		return product, nil
	}
	scratch := a.Abs()
	for c := b.mag.First(); c.Valid(); c = c.Next() {
		if c.Bit() {
			if err := product.AddInPlace(scratch); err != nil {
				return nil, err
			}
		}
		if !c.Next().Valid() {
			break
		}
		if err := scratch.mag.Prepend(false); err != nil {
			return nil, err
		}
	}
	product.Neg = a.IsNeg() != b.IsNeg()
	product.canon()
	return product, nil
}

// MulInPlace sets x = x * y. x and y may be the same value.
func (x *BigInt) MulInPlace(y *BigInt) error {
	p, err := Mul(x, y)
	if err != nil {
		return err
	}
	x.Swap(p)
	return nil
}

// udivmod runs restoring long division on two magnitudes.
//
// Dividend bits are consumed from the most significant end. Each one is
// shifted into the running remainder; when the remainder reaches the divisor
// the divisor is subtracted and a 1 quotient bit is recorded, otherwise a 0.
// Quotient bits arrive most significant first and are prepended.
func udivmod(n, d *Bits) (q, r Bits, err error) {
	if d.isZero() {
		return Bits{}, Bits{}, ErrDivByZero
	}
	for c := n.Last(); c.Valid(); c = c.Prev() {
		if err := r.Prepend(c.Bit()); err != nil {
			return Bits{}, Bits{}, err
		}
		bit := cmpBits(&r, d) >= 0
		if bit {
			usubInPlace(&r, d)
		}
		r.TrimHigh()
		if err := q.Prepend(bit); err != nil {
			return Bits{}, Bits{}, err
		}
	}
	q.TrimHigh()
	return q, r, nil
}

// DivMod returns the Euclidean quotient and remainder of a / d:
// a = q*d + r with 0 <= r < |d|.
func DivMod(a, d *BigInt) (q, r *BigInt, err error) {
	if d.IsZero() {
		return nil, nil, ErrDivByZero
	}
	qm, rm, err := udivmod(&a.mag, &d.mag)
	if err != nil {
		return nil, nil, err
	}
	q, r = &BigInt{mag: qm}, &BigInt{mag: rm}
	if a.IsNeg() && !r.IsZero() {
		// -(q0*|d| + r0) = -(q0+1)*|d| + (|d| - r0)
		if err := q.AddInPlace(FromInt64(1)); err != nil {
			return nil, nil, err
		}
		dm := d.Abs()
		if err := dm.SubInPlace(r); err != nil {
			return nil, nil, err
		}
		r = dm
		r.RemoveHighZeroBits()
	}
	q.Neg = a.IsNeg() != d.IsNeg()
	q.canon()
	return q, r, nil
}

// QuoRem returns the truncated quotient and remainder of a / d. The
// remainder takes the sign of a.
func QuoRem(a, d *BigInt) (q, r *BigInt, err error) {
	if d.IsZero() {
		return nil, nil, ErrDivByZero
	}
	qm, rm, err := udivmod(&a.mag, &d.mag)
	if err != nil {
		return nil, nil, err
	}
	q = &BigInt{Neg: a.IsNeg() != d.IsNeg(), mag: qm}
	r = &BigInt{Neg: a.IsNeg(), mag: rm}
	q.canon()
	r.canon()
	return q, r, nil
}

// Div returns the Euclidean quotient of a / d.
func Div(a, d *BigInt) (*BigInt, error) {
	q, _, err := DivMod(a, d)
	return q, err
}

// Mod returns the Euclidean remainder of a / d, always in [0, |d|).
func Mod(a, d *BigInt) (*BigInt, error) {
	_, r, err := DivMod(a, d)
	return r, err
}

// Rem returns the truncated remainder of a / d.
func Rem(a, d *BigInt) (*BigInt, error) {
	_, r, err := QuoRem(a, d)
	return r, err
}

// DivModInPlace replaces x with the Euclidean quotient x / d and returns the
// remainder.
func (x *BigInt) DivModInPlace(d *BigInt) (*BigInt, error) {
	q, r, err := DivMod(x, d)
	if err != nil {
		return nil, err
	}
	x.Swap(q)
	return r, nil
}
