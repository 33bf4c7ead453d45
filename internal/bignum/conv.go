package bignum

import (
	"fmt"
	"io"
	"strings"
)

// Parse reads a decimal integer with an optional leading sign. Surrounding
// space is ignored and a single '_' may separate digits. ParseError offsets
// index into s itself.
//
// Digits are accumulated from the least significant end as
// value += digit*place, place *= 10, using this package's own Mul and Add.
func Parse(s string) (*BigInt, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return nil, &ParseError{Input: s, Reason: "empty input"}
	}
	lead := strings.Index(s, in)
	neg := false
	start := 0
	switch in[0] {
	case '+':
		start = 1
	case '-':
		neg = true
		start = 1
	}

	digits := make([]byte, 0, len(in)-start)
	for i := start; i < len(in); i++ {
		ch := in[i]
		switch {
		case ch >= '0' && ch <= '9':
			digits = append(digits, ch-'0')
		case ch == '_' && len(digits) > 0 && i+1 < len(in) && in[i-1] != '_':
			continue
		default:
			return nil, &ParseError{Input: s, Offset: lead + i, Reason: fmt.Sprintf("unexpected %q", ch)}
		}
	}
	if len(digits) == 0 {
		return nil, &ParseError{Input: s, Offset: lead + start, Reason: "no digits"}
	}

	ten := FromInt64(10)
	value := New()
	place := FromInt64(1)
	for i := len(digits) - 1; i >= 0; i-- {
		if d := digits[i]; d != 0 {
			term, err := Mul(place, FromInt64(int64(d)))
			if err != nil {
				return nil, err
			}
			if err := value.AddInPlace(term); err != nil {
				return nil, err
			}
		}
		if i > 0 {
			if err := place.MulInPlace(ten); err != nil {
				return nil, err
			}
		}
	}
	value.Neg = neg
	value.canon()
	return value, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// BinaryString returns the raw bits from most to least significant,
// padding included and without a sign. An empty value yields "".
func (x *BigInt) BinaryString() string {
	var sb strings.Builder
	sb.Grow(x.mag.n)
	for c := x.mag.Last(); c.Valid(); c = c.Prev() {
		if c.Bit() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Text returns the canonical text of x in base 2 or 10.
//
// Base 2 has no sign prefix and no padding; base 10 is prefixed with '-'
// for negative values. Zero is "0" in both.
func (x *BigInt) Text(base int) (string, error) {
	switch base {
	case 2:
		if x.IsZero() {
			return "0", nil
		}
		t := x.Copy()
		t.RemoveHighZeroBits()
		return t.BinaryString(), nil
	case 10:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrBase, base)
	}
}

// String returns the base-10 text of x by repeated division by ten.
func (x *BigInt) String() string {
	if x == nil {
		return "<nil>"
	}
	if x.IsZero() {
		return "0"
	}
	ten := FromInt64(10)
	cur := x.Abs()
	var digits []byte
	for !cur.IsZero() {
		r, err := cur.DivModInPlace(ten)
		if err != nil {
			return "<format-error>"
		}
		digits = append(digits, '0'+byte(r.LowWord()))
	}
	if x.IsNeg() {
		digits = append(digits, '-')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Format implements fmt.Formatter for the verbs d, s, v and b. A width pads
// with spaces, left-justified under the '-' flag.
func (x *BigInt) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'd', 's', 'v':
		s = x.String()
	case 'b':
		if x == nil {
			s = "<nil>"
			break
		}
		s, _ = x.Text(2)
		if x.IsNeg() {
			s = "-" + s
		}
	default:
		fmt.Fprintf(f, "%%!%c(bignum.BigInt=%s)", verb, x.String())
		return
	}
	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = io.WriteString(f, s)
}
