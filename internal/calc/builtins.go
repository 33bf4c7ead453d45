package calc

import (
	"context"

	"fortio.org/safecast"

	"bitnum/internal/bignum"
)

// builtin describes a function callable from expressions.
type builtin struct {
	arity int
	doc   string
	fn    func(ctx context.Context, args []*bignum.BigInt) (*bignum.BigInt, error)
}

// argError points a builtin failure at one of its arguments.
type argError struct {
	index int
	err   error
}

func (e *argError) Error() string { return e.err.Error() }
func (e *argError) Unwrap() error { return e.err }

var builtins = map[string]builtin{
	"abs": {1, "absolute value", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return a[0].Abs(), nil
	}},
	"neg": {1, "negation", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return a[0].Negated(), nil
	}},
	"fact": {1, "factorial", func(ctx context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.FactorialContext(ctx, a[0])
	}},
	"div": {2, "Euclidean quotient", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.Div(a[0], a[1])
	}},
	"mod": {2, "Euclidean remainder, never negative", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.Mod(a[0], a[1])
	}},
	"quo": {2, "truncated quotient", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		q, _, err := bignum.QuoRem(a[0], a[1])
		return q, err
	}},
	"rem": {2, "truncated remainder, sign of the dividend", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.Rem(a[0], a[1])
	}},
	"cmp": {2, "-1, 0 or 1", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.FromInt64(int64(bignum.Cmp(a[0], a[1]))), nil
	}},
	"shl": {2, "shift left by n bits", shiftLeft},
	"shr": {2, "shift right by n bits", shiftRight},
	"slice": {3, "bits [lo, hi) as a new value", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		lo, err := toInt(a, 1)
		if err != nil {
			return nil, err
		}
		hi, err := toInt(a, 2)
		if err != nil {
			return nil, err
		}
		return bignum.BinarySlice(a[0], lo, hi), nil
	}},
	"rev": {1, "reverse the bit order", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		x := a[0].Copy()
		x.Reverse()
		return x, nil
	}},
	"low": {1, "low 32 bits as a signed machine word", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.FromInt32(a[0].LowWord()), nil
	}},
	"len": {1, "stored bit count, padding included", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.FromInt64(int64(a[0].Len())), nil
	}},
	"bitlen": {1, "minimal bit count", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		return bignum.FromInt64(int64(a[0].BitLen())), nil
	}},
	"trim": {1, "drop high zero padding", func(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
		x := a[0].Copy()
		x.RemoveHighZeroBits()
		return x, nil
	}},
}

func shiftLeft(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
	n, err := toInt(a, 1)
	if err != nil {
		return nil, err
	}
	x := a[0].Copy()
	if err := x.ShiftLeft(n); err != nil {
		return nil, &argError{index: 1, err: err}
	}
	return x, nil
}

func shiftRight(_ context.Context, a []*bignum.BigInt) (*bignum.BigInt, error) {
	n, err := toInt(a, 1)
	if err != nil {
		return nil, err
	}
	x := a[0].Copy()
	if err := x.ShiftRight(n); err != nil {
		return nil, &argError{index: 1, err: err}
	}
	return x, nil
}

// toInt converts argument i to a machine int.
func toInt(a []*bignum.BigInt, i int) (int, error) {
	v, ok := a[i].Int64()
	if !ok {
		return 0, &argError{index: i, err: ErrRange}
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, &argError{index: i, err: ErrRange}
	}
	return n, nil
}

// Builtins lists the callable functions with a one-line description each.
func Builtins() map[string]string {
	out := make(map[string]string, len(builtins))
	for name, b := range builtins {
		out[name] = b.doc
	}
	return out
}
