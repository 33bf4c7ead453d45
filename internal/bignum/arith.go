package bignum

// AddInPlace sets x = x + y.
//
// x and y may be the same value. Equal operands take a single left shift
// instead of rippling a sequence against itself.
func (x *BigInt) AddInPlace(y *BigInt) error {
	if x == y || Cmp(x, y) == 0 {
		if x.mag.n > 0 {
			if err := x.mag.Prepend(false); err != nil {
				return err
			}
		}
		x.canon()
		return nil
	}

	xn, yn := x.IsNeg(), y.IsNeg()
	if xn == yn {
		if err := uaddInPlace(&x.mag, &y.mag); err != nil {
			return err
		}
		x.Neg = xn
		return nil
	}

	// Opposite signs: the larger magnitude keeps its sign.
	if CmpAbs(x, y) >= 0 {
		usubInPlace(&x.mag, &y.mag)
		x.Neg = xn
		x.canon()
		return nil
	}
	t := y.Copy()
	usubInPlace(&t.mag, &x.mag)
	x.mag = t.mag
	x.Neg = yn
	x.canon()
	return nil
}

// SubInPlace sets x = x - y.
//
// x and y may be the same value; equal operands zero x.
func (x *BigInt) SubInPlace(y *BigInt) error {
	if x == y || Cmp(x, y) == 0 {
		x.Release()
		return nil
	}

	xn, yn := x.IsNeg(), y.IsNeg()
	if xn != yn {
		// x - (-y) = x + y and -x - y = -(x + y).
		if err := uaddInPlace(&x.mag, &y.mag); err != nil {
			return err
		}
		x.Neg = xn
		return nil
	}

	if CmpAbs(x, y) >= 0 {
		usubInPlace(&x.mag, &y.mag)
		x.Neg = xn
		x.canon()
		return nil
	}
	t := y.Copy()
	usubInPlace(&t.mag, &x.mag)
	x.mag = t.mag
	x.Neg = !xn
	x.canon()
	return nil
}

// Add returns a + b as a new value.
func Add(a, b *BigInt) (*BigInt, error) {
	z := a.Copy()
	if err := z.AddInPlace(b); err != nil {
		return nil, err
	}
	return z, nil
}

// Sub returns a - b as a new value.
func Sub(a, b *BigInt) (*BigInt, error) {
	z := a.Copy()
	if err := z.SubInPlace(b); err != nil {
		return nil, err
	}
	return z, nil
}

// Negated returns -x as a new value.
func (x *BigInt) Negated() *BigInt {
	z := x.Copy()
	z.Neg = !x.IsNeg()
	z.canon()
	return z
}

// Abs returns |x| as a new value.
func (x *BigInt) Abs() *BigInt {
	z := x.Copy()
	z.Neg = false
	return z
}
