package calc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitnum/internal/bignum"
	"bitnum/internal/trace"
)

func TestEvalValues(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"2 << 3 + 1", "32"},
		{"100 >> 2", "25"},
		{"99 + 365", "464"},
		{"-98765 + -72", "-98837"},
		{"199 * 305", "60695"},
		{"1_000 * 1_000", "1000000"},
		{"-7 / 2", "-4"},
		{"-7 % 2", "1"},
		{"quo(-7, 2)", "-3"},
		{"rem(-7, 2)", "-1"},
		{"987653 / 10", "98765"},
		{"987653 % 10", "3"},
		{"5!", "120"},
		{"-3!", "-6"},
		{"fact(20)", "2432902008176640000"},
		{"fact(30) / fact(28)", "870"},
		{"１２＋３", "15"},
		{"0b1011", "11"},
		{"0b1_011", "11"},
		{"len(0b0010)", "4"},
		{"bitlen(0b0010)", "2"},
		{"len(trim(0b0010))", "2"},
		{"low(12345678900987654321)", "-597200719"},
		{"low(-5)", "5"},
		{"slice(181, 2, 6)", "13"},
		{"rev(0b1101000)", "11"},
		{"cmp(-5, 3)", "-1"},
		{"cmp(0b000, 0)", "0"},
		{"shr(100, 2)", "25"},
		{"shl(-3, 70)", "-3541774862152233910272"},
		{"abs(-12345678901234567890)", "12345678901234567890"},
		{"neg(0)", "0"},
		{"div(7, -2)", "-3"},
		{"mod(7, -2)", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := Eval(context.Background(), tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		src string
		is  error
		off int
	}{
		{"1 / 0", bignum.ErrDivByZero, 2},
		{"mod(1, 0)", bignum.ErrDivByZero, 0},
		{"1 +", ErrSyntax, 3},
		{"(1 + 2", ErrSyntax, 6},
		{"1 2", ErrSyntax, 2},
		{"foo(1)", ErrSyntax, 0},
		{"abs(1, 2)", ErrArity, 0},
		{"shl(1, -1)", bignum.ErrNegativeShift, 7},
		{"1 << 99999999999999999999", ErrRange, 5},
		{"(-3)!", bignum.ErrNegativeFactorial, 4},
		{"12ab", ErrSyntax, 0},
		{"0b102", ErrSyntax, 0},
		{"0b", ErrSyntax, 2},
		{"0b1__0", ErrSyntax, 4},
		{"1__0", bignum.ErrParse, 2},
		{"7 + 1__0", bignum.ErrParse, 6},
		{"1 $ 2", ErrSyntax, 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Eval(context.Background(), tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.is)

			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.off, cerr.Off, "error: %v", err)
		})
	}
}

func TestEvalCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Eval(ctx, "1 + 1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvalCancelledWhileRunning(t *testing.T) {
	for _, src := range []string{"fact(50000)", "1 + 50000!"} {
		t.Run(src, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			time.AfterFunc(20*time.Millisecond, cancel)

			start := time.Now()
			_, err := Eval(ctx, src)
			require.ErrorIs(t, err, context.Canceled)
			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "evaluation cancelled", cerr.Msg)
			assert.Less(t, time.Since(start), 10*time.Second)
		})
	}
}

func TestEvalTracesOps(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelOp)
	ctx := trace.WithTracer(context.Background(), ring)

	v, err := Eval(ctx, "2 * 3 + 1")
	require.NoError(t, err)
	assert.Equal(t, "7", v.String())

	var evalID uint64
	var ops []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind != trace.KindSpanBegin {
			continue
		}
		switch ev.Scope {
		case trace.ScopeJob:
			evalID = ev.SpanID
		case trace.ScopeOp:
			ops = append(ops, ev.Name)
			assert.Equal(t, evalID, ev.ParentID)
		}
	}
	assert.Equal(t, []string{"op:mul", "op:add"}, ops)
}

func TestParseDeepNesting(t *testing.T) {
	src := strings.Repeat("(", 1000) + "1" + strings.Repeat(")", 1000)
	_, err := Parse(src)
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Parse(strings.Repeat("-", 1000) + "1")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestErrorCaret(t *testing.T) {
	e := &Error{Src: "1 / 0", Off: 2, Err: bignum.ErrDivByZero}
	assert.Equal(t, "1 / 0\n  ^", e.Caret())
	assert.Equal(t, "offset 2: division by zero", e.Error())

	wide := &Error{Src: "世界+1", Off: 7}
	assert.Equal(t, "世界+1\n     ^", wide.Caret())
}

func TestLexer(t *testing.T) {
	lx := NewLexer("fact(0b10)<<2!")
	var kinds []Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			break
		}
	}
	assert.Equal(t, []Kind{Ident, LParen, Int, RParen, Shl, Int, Bang, EOF}, kinds)
}

func TestBuiltinsDocumented(t *testing.T) {
	for name, doc := range Builtins() {
		assert.NotEmpty(t, doc, name)
	}
}
