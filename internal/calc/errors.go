package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrSyntax marks malformed expressions.
	ErrSyntax = errors.New("syntax error")
	// ErrArity marks a builtin called with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrRange marks an argument that does not fit the operation, such as
	// a shift count beyond the machine int range.
	ErrRange = errors.New("argument out of range")
)

// Error is an evaluation or syntax error tied to a position in the
// normalized source. Err is the cause: one of this package's sentinels or
// a bignum error such as bignum.ErrDivByZero.
type Error struct {
	Src string
	Off int
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("offset %d: %v", e.Off, e.Err)
	}
	return fmt.Sprintf("offset %d: %s", e.Off, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Caret renders the source line with a marker under the failing column.
// The column is measured in display cells so wide characters line up.
func (e *Error) Caret() string {
	off := min(max(e.Off, 0), len(e.Src))
	lineStart := strings.LastIndexByte(e.Src[:off], '\n') + 1
	lineEnd := strings.IndexByte(e.Src[off:], '\n')
	if lineEnd < 0 {
		lineEnd = len(e.Src)
	} else {
		lineEnd += off
	}
	col := runewidth.StringWidth(e.Src[lineStart:off])
	return e.Src[lineStart:lineEnd] + "\n" + strings.Repeat(" ", col) + "^"
}
