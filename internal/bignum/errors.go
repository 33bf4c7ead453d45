package bignum

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxBits indicates the numeric size limit was exceeded.
	ErrMaxBits = errors.New("numeric size limit exceeded")
	// ErrDivByZero indicates an attempt to divide by zero.
	ErrDivByZero = errors.New("division by zero")
	// ErrParse indicates malformed decimal input.
	ErrParse = errors.New("invalid numeric format")
	// ErrBase indicates a text base other than 2 or 10.
	ErrBase = errors.New("unsupported base")
	// ErrNegativeShift indicates a negative shift count.
	ErrNegativeShift = errors.New("negative shift")
	// ErrNegativeFactorial indicates a factorial of a negative value.
	ErrNegativeFactorial = errors.New("factorial of negative value")
)

// ParseError describes where decimal parsing failed.
//
// errors.Is(err, ErrParse) holds for every ParseError.
type ParseError struct {
	Input  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", ErrParse, e.Input)
	}
	return fmt.Sprintf("%v: %q: %s at offset %d", ErrParse, e.Input, e.Reason, e.Offset)
}

func (e *ParseError) Unwrap() error { return ErrParse }
