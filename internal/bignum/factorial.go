package bignum

import "context"

// Factorial returns n! using only Mul and Add.
func Factorial(n *BigInt) (*BigInt, error) {
	return FactorialContext(context.Background(), n)
}

// FactorialContext is Factorial that gives up with ctx.Err() once ctx is
// done. The check runs before every multiplication step.
func FactorialContext(ctx context.Context, n *BigInt) (*BigInt, error) {
	if n.IsNeg() {
		return nil, ErrNegativeFactorial
	}
	one := FromInt64(1)
	result := FromInt64(1)
	for i := FromInt64(2); Cmp(i, n) <= 0; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := Mul(result, i)
		if err != nil {
			return nil, err
		}
		result = next
		if err := i.AddInPlace(one); err != nil {
			return nil, err
		}
	}
	return result, nil
}
