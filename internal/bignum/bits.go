// Package bignum implements arbitrary-precision signed integers stored as an
// explicit sequence of bits.
//
// Magnitudes live in a Bits sequence (index 0 is the 2^0 place) and the sign
// is kept in a separate flag. Arithmetic is bit-serial: ripple-carry addition,
// ripple-borrow subtraction, shift-and-add multiplication and restoring long
// division. Values are not required to be minimal; high zero bits are
// tolerated everywhere and removed only on request.
package bignum

import "math/bits"

const wordBits = 64

// MaxBits is the maximum number of bits a single sequence may hold.
const MaxBits = 1 << 26

// Bits is a growable sequence of bits packed into 64-bit limbs.
//
// Bit i is stored in words[i/64] at position i%64. len(words) is always
// (n+63)/64 and every bit at an index >= n is zero.
type Bits struct {
	words []uint64
	n     int
}

func wordsFor(n int) int { return (n + wordBits - 1) / wordBits }

// Len returns the number of bits in the sequence.
func (s *Bits) Len() int { return s.n }

// At returns bit i, or false when i is outside the sequence.
func (s *Bits) At(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.words[i/wordBits]>>(uint(i)%wordBits)&1 == 1
}

// Set overwrites bit i. Indices outside the sequence are ignored.
func (s *Bits) Set(i int, b bool) {
	if i < 0 || i >= s.n {
		return
	}
	s.set(i, b)
}

func (s *Bits) set(i int, b bool) {
	m := uint64(1) << (uint(i) % wordBits)
	if b {
		s.words[i/wordBits] |= m
	} else {
		s.words[i/wordBits] &^= m
	}
}

// Append adds b as the new most significant bit.
func (s *Bits) Append(b bool) error {
	if s.n >= MaxBits {
		return ErrMaxBits
	}
	if s.n%wordBits == 0 {
		s.words = append(s.words, 0)
	}
	s.n++
	s.set(s.n-1, b)
	return nil
}

// Prepend adds b as the new least significant bit, moving every other bit
// one place up.
func (s *Bits) Prepend(b bool) error {
	if err := s.ShiftUp(1); err != nil {
		return err
	}
	if b {
		s.words[0] |= 1
	}
	return nil
}

// PopMSB removes and returns the most significant bit.
// It returns false when the sequence is already empty.
func (s *Bits) PopMSB() bool {
	if s.n == 0 {
		return false
	}
	b := s.At(s.n - 1)
	s.set(s.n-1, false)
	s.n--
	s.words = s.words[:wordsFor(s.n)]
	if s.n == 0 {
		s.words = nil
	}
	return b
}

// PopLSB removes and returns the least significant bit.
// It returns false when the sequence is already empty.
func (s *Bits) PopLSB() bool {
	if s.n == 0 {
		return false
	}
	b := s.At(0)
	s.ShiftDown(1)
	return b
}

// ShiftUp prepends k zero bits.
func (s *Bits) ShiftUp(k int) error {
	if k < 0 {
		return ErrNegativeShift
	}
	if k == 0 {
		return nil
	}
	if k > MaxBits-s.n {
		return ErrMaxBits
	}
	newN := s.n + k
	old := len(s.words)
	need := wordsFor(newN)
	s.words = append(s.words, make([]uint64, need-old)...)

	ws, bs := k/wordBits, uint(k%wordBits)
	for i := need - 1; i >= 0; i-- {
		var v uint64
		src := i - ws
		if src >= 0 && src < old {
			v = s.words[src] << bs
		}
		if bs != 0 && src-1 >= 0 && src-1 < old {
			v |= s.words[src-1] >> (wordBits - bs)
		}
		s.words[i] = v
	}
	s.n = newN
	return nil
}

// ShiftDown removes the k least significant bits. Removing more bits than
// the sequence holds empties it.
func (s *Bits) ShiftDown(k int) {
	if k <= 0 {
		return
	}
	if k >= s.n {
		s.Reset()
		return
	}
	newN := s.n - k
	need := wordsFor(newN)
	ws, bs := k/wordBits, uint(k%wordBits)
	for i := 0; i < need; i++ {
		v := s.words[i+ws] >> bs
		if bs != 0 && i+ws+1 < len(s.words) {
			v |= s.words[i+ws+1] << (wordBits - bs)
		}
		s.words[i] = v
	}
	clear(s.words[need:])
	s.words = s.words[:need]
	s.n = newN
}

// Reset empties the sequence and drops its storage.
func (s *Bits) Reset() {
	s.words = nil
	s.n = 0
}

// Clone returns an independent copy of the sequence.
func (s *Bits) Clone() Bits {
	if s.n == 0 {
		return Bits{}
	}
	out := make([]uint64, len(s.words))
	copy(out, s.words)
	return Bits{words: out, n: s.n}
}

// BitLen returns the length of the sequence without its high zero bits.
func (s *Bits) BitLen() int {
	for i := len(s.words) - 1; i >= 0; i-- {
		if w := s.words[i]; w != 0 {
			return i*wordBits + bits.Len64(w)
		}
	}
	return 0
}

// TrimHigh pops zero bits from the most significant end and returns how
// many were removed.
func (s *Bits) TrimHigh() int {
	keep := s.BitLen()
	removed := s.n - keep
	if removed == 0 {
		return 0
	}
	s.n = keep
	s.words = s.words[:wordsFor(keep)]
	if keep == 0 {
		s.words = nil
	}
	return removed
}

// Reverse reverses the order of the bits in place.
func (s *Bits) Reverse() {
	if s.n < 2 {
		return
	}
	for i, j := 0, len(s.words)-1; i <= j; i, j = i+1, j-1 {
		s.words[i], s.words[j] = bits.Reverse64(s.words[j]), bits.Reverse64(s.words[i])
	}
	// The reversed bits now occupy the top of the last word's span.
	pad := len(s.words)*wordBits - s.n
	if pad == 0 {
		return
	}
	s.n = len(s.words) * wordBits
	s.ShiftDown(pad)
}

// isZero reports whether every bit is zero.
func (s *Bits) isZero() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}
