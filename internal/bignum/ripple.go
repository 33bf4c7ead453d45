package bignum

// fullAdd is a single-bit full adder.
func fullAdd(a, b, carry bool) (sum, carryOut bool) {
	sum = a != b != carry
	carryOut = (a && b) || (a && carry) || (b && carry)
	return sum, carryOut
}

// fullSub is a single-bit full subtractor computing a - b - borrow.
func fullSub(a, b, borrow bool) (diff, borrowOut bool) {
	diff = a != b != borrow
	borrowOut = (borrow && !a) || (borrow && b) || (!borrow && !a && b)
	return diff, borrowOut
}

// uaddInPlace adds magnitude b into a, ignoring signs. b is not modified.
// a and b must not be the same sequence.
func uaddInPlace(a, b *Bits) error {
	if max(a.n, b.n) >= MaxBits {
		return ErrMaxBits
	}
	carry := false
	ca, cb := a.First(), b.First()
	for ca.Valid() && cb.Valid() {
		var s bool
		s, carry = fullAdd(ca.Bit(), cb.Bit(), carry)
		ca.Set(s)
		ca, cb = ca.Next(), cb.Next()
	}
	// b is exhausted: ripple the carry through the rest of a.
	for carry && ca.Valid() {
		var s bool
		s, carry = fullAdd(ca.Bit(), false, carry)
		ca.Set(s)
		ca = ca.Next()
	}
	// a is exhausted: grow it with the rest of b.
	for cb.Valid() {
		var s bool
		s, carry = fullAdd(false, cb.Bit(), carry)
		if err := a.Append(s); err != nil {
			return err
		}
		cb = cb.Next()
	}
	if carry {
		return a.Append(true)
	}
	return nil
}

// usubInPlace subtracts magnitude b from a, ignoring signs.
//
// The caller must guarantee |a| >= |b|; the length of a never grows and an
// underflow is not reported. a and b must not be the same sequence.
func usubInPlace(a, b *Bits) {
	borrow := false
	ca, cb := a.First(), b.First()
	for ca.Valid() && cb.Valid() {
		var d bool
		d, borrow = fullSub(ca.Bit(), cb.Bit(), borrow)
		ca.Set(d)
		ca, cb = ca.Next(), cb.Next()
	}
	for borrow && ca.Valid() {
		var d bool
		d, borrow = fullSub(ca.Bit(), false, borrow)
		ca.Set(d)
		ca = ca.Next()
	}
}
