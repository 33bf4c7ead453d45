package calc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bitnum/internal/bignum"
	"bitnum/internal/trace"
)

// Eval parses and evaluates src.
//
// An evaluation span (ScopeJob) and one span per arithmetic operation
// (ScopeOp) are emitted to the tracer carried by ctx. Cancellation of ctx is
// checked before each operation and between the steps of a factorial.
func Eval(ctx context.Context, src string) (*bignum.BigInt, error) {
	ctx, span := trace.Start(ctx, trace.ScopeJob, "eval")
	defer span.End("")

	expr, err := Parse(src)
	if err != nil {
		span.WithExtra("error", err.Error())
		return nil, err
	}
	v, err := Evaluate(ctx, Normalize(src), expr)
	if err != nil {
		span.WithExtra("error", err.Error())
		return nil, err
	}
	span.WithExtra("bits", strconv.Itoa(v.Len()))
	return v, nil
}

// Evaluate evaluates a parsed tree. src is the normalized source the tree
// was parsed from; it is only used to render errors.
func Evaluate(ctx context.Context, src string, expr Expr) (*bignum.BigInt, error) {
	ev := &evaluator{ctx: ctx, src: src}
	return ev.eval(expr)
}

type evaluator struct {
	ctx context.Context
	src string
}

func (ev *evaluator) eval(e Expr) (*bignum.BigInt, error) {
	switch e := e.(type) {
	case *Lit:
		return ev.literal(e)

	case *Unary:
		x, err := ev.eval(e.X)
		if err != nil {
			return nil, err
		}
		if e.Op == Plus {
			return x, nil
		}
		return ev.op("neg", e.Off, func() (*bignum.BigInt, error) { return x.Negated(), nil })

	case *Factorial:
		x, err := ev.eval(e.X)
		if err != nil {
			return nil, err
		}
		return ev.op("fact", e.Off, func() (*bignum.BigInt, error) { return bignum.FactorialContext(ev.ctx, x) })

	case *Binary:
		return ev.binary(e)

	case *Call:
		return ev.call(e)

	default:
		return nil, ev.errAt(e.Pos(), fmt.Sprintf("unsupported node %T", e), ErrSyntax)
	}
}

func (ev *evaluator) binary(e *Binary) (*bignum.BigInt, error) {
	l, err := ev.eval(e.L)
	if err != nil {
		return nil, err
	}
	r, err := ev.eval(e.R)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case Plus:
		return ev.op("add", e.Off, func() (*bignum.BigInt, error) { return bignum.Add(l, r) })
	case Minus:
		return ev.op("sub", e.Off, func() (*bignum.BigInt, error) { return bignum.Sub(l, r) })
	case Star:
		return ev.op("mul", e.Off, func() (*bignum.BigInt, error) { return bignum.Mul(l, r) })
	case Slash:
		return ev.op("div", e.Off, func() (*bignum.BigInt, error) { return bignum.Div(l, r) })
	case Percent:
		return ev.op("mod", e.Off, func() (*bignum.BigInt, error) { return bignum.Mod(l, r) })
	case Shl:
		return ev.builtin("shl", e.Off, []int{e.L.Pos(), e.R.Pos()}, []*bignum.BigInt{l, r})
	case Shr:
		return ev.builtin("shr", e.Off, []int{e.L.Pos(), e.R.Pos()}, []*bignum.BigInt{l, r})
	default:
		return nil, ev.errAt(e.Off, fmt.Sprintf("unknown operator %s", e.Op), ErrSyntax)
	}
}

func (ev *evaluator) call(e *Call) (*bignum.BigInt, error) {
	b, ok := builtins[e.Name]
	if !ok {
		return nil, ev.errAt(e.Off, fmt.Sprintf("unknown function %q", e.Name), ErrSyntax)
	}
	if len(e.Args) != b.arity {
		return nil, ev.errAt(e.Off, fmt.Sprintf("%s takes %d argument(s), got %d", e.Name, b.arity, len(e.Args)), ErrArity)
	}
	args := make([]*bignum.BigInt, len(e.Args))
	pos := make([]int, len(e.Args))
	for i, a := range e.Args {
		v, err := ev.eval(a)
		if err != nil {
			return nil, err
		}
		args[i], pos[i] = v, a.Pos()
	}
	return ev.builtin(e.Name, e.Off, pos, args)
}

// builtin runs a table entry, moving argument errors to the argument.
func (ev *evaluator) builtin(name string, off int, pos []int, args []*bignum.BigInt) (*bignum.BigInt, error) {
	v, err := ev.op(name, off, func() (*bignum.BigInt, error) { return builtins[name].fn(ev.ctx, args) })
	var ae *argError
	if errors.As(err, &ae) {
		return nil, ev.errAt(pos[ae.index], fmt.Sprintf("%s: %v", name, ae.err), ae.err)
	}
	return v, err
}

// op runs one traced arithmetic step.
func (ev *evaluator) op(name string, off int, fn func() (*bignum.BigInt, error)) (*bignum.BigInt, error) {
	if err := ev.ctx.Err(); err != nil {
		return nil, ev.errAt(off, "evaluation cancelled", err)
	}
	span := trace.Begin(trace.FromContext(ev.ctx), trace.ScopeOp, "op:"+name, trace.ParentFrom(ev.ctx))
	v, err := fn()
	if err != nil {
		span.WithExtra("error", err.Error()).End("")
		if cerr := ev.ctx.Err(); cerr != nil && errors.Is(err, cerr) {
			return nil, ev.errAt(off, "evaluation cancelled", err)
		}
		var ae *argError
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, ev.errAt(off, fmt.Sprintf("%s: %v", name, err), err)
	}
	span.WithExtra("bits", strconv.Itoa(v.Len())).End("")
	return v, nil
}

func (ev *evaluator) literal(e *Lit) (*bignum.BigInt, error) {
	if strings.HasPrefix(e.Text, "0b") || strings.HasPrefix(e.Text, "0B") {
		v, bad := parseBinary(e.Text[2:])
		if bad >= 0 {
			return nil, ev.errAt(e.Off+2+bad, fmt.Sprintf("malformed binary literal %q", e.Text), ErrSyntax)
		}
		return v, nil
	}
	v, err := bignum.Parse(e.Text)
	if err != nil {
		off := e.Off
		var pe *bignum.ParseError
		if errors.As(err, &pe) {
			off += pe.Offset
		}
		return nil, ev.errAt(off, fmt.Sprintf("malformed literal %q", e.Text), err)
	}
	return v, nil
}

// parseBinary builds a value from binary digits, least significant first,
// keeping leading zeros as high padding. It returns the offset of the first
// bad character, or -1.
func parseBinary(digits string) (*bignum.BigInt, int) {
	if digits == "" {
		return nil, 0
	}
	v := bignum.New()
	for i := len(digits) - 1; i >= 0; i-- {
		switch digits[i] {
		case '0', '1':
			if err := v.Append(digits[i] == '1'); err != nil {
				return nil, i
			}
		case '_':
			if i == 0 || i == len(digits)-1 || digits[i-1] == '_' {
				return nil, i
			}
		default:
			return nil, i
		}
	}
	return v, -1
}

func (ev *evaluator) errAt(off int, msg string, cause error) *Error {
	return &Error{Src: ev.src, Off: off, Msg: msg, Err: cause}
}
