package bignum

// Cursor is a position inside a Bits sequence. It stands in for a reference
// to a single bit: it can read and write that bit and walk toward either end.
//
// The zero Cursor is invalid and represents "no bit". Cursors are positional,
// so Prepend or ShiftUp on the underlying sequence moves the bit a cursor
// refers to.
type Cursor struct {
	seq *Bits
	pos int
}

// First returns a cursor at the least significant bit, or an invalid cursor
// when the sequence is empty.
func (s *Bits) First() Cursor {
	if s.n == 0 {
		return Cursor{}
	}
	return Cursor{seq: s, pos: 0}
}

// Last returns a cursor at the most significant bit, or an invalid cursor
// when the sequence is empty.
func (s *Bits) Last() Cursor {
	if s.n == 0 {
		return Cursor{}
	}
	return Cursor{seq: s, pos: s.n - 1}
}

// Valid reports whether the cursor refers to an existing bit.
func (c Cursor) Valid() bool {
	return c.seq != nil && c.pos >= 0 && c.pos < c.seq.n
}

// Index returns the bit position, or -1 for an invalid cursor.
func (c Cursor) Index() int {
	if !c.Valid() {
		return -1
	}
	return c.pos
}

// Bit returns the bit under the cursor.
func (c Cursor) Bit() bool {
	if !c.Valid() {
		return false
	}
	return c.seq.At(c.pos)
}

// Set overwrites the bit under the cursor.
func (c Cursor) Set(b bool) {
	if c.Valid() {
		c.seq.set(c.pos, b)
	}
}

// TowardMSB returns the cursor k places closer to the most significant bit.
// It returns an invalid cursor when that runs off the sequence.
func (c Cursor) TowardMSB(k int) Cursor {
	if !c.Valid() {
		return Cursor{}
	}
	p := c.pos + k
	if p < 0 || p >= c.seq.n {
		return Cursor{}
	}
	return Cursor{seq: c.seq, pos: p}
}

// TowardLSB returns the cursor k places closer to the least significant bit.
func (c Cursor) TowardLSB(k int) Cursor {
	return c.TowardMSB(-k)
}

// Next steps one place toward the most significant bit.
func (c Cursor) Next() Cursor { return c.TowardMSB(1) }

// Prev steps one place toward the least significant bit.
func (c Cursor) Prev() Cursor { return c.TowardMSB(-1) }
