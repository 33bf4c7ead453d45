package calc

import "fmt"

// Таблица приоритетов: чем больше число, тем выше приоритет.
const (
	precShift          = 1 // << >>
	precAdditive       = 2 // + -
	precMultiplicative = 3 // * / %
)

// binaryPrec returns the precedence of an infix operator, or -1.
// All infix operators are left-associative.
func binaryPrec(k Kind) int {
	switch k {
	case Shl, Shr:
		return precShift
	case Plus, Minus:
		return precAdditive
	case Star, Slash, Percent:
		return precMultiplicative
	default:
		return -1
	}
}

// maxDepth bounds nesting so hostile input cannot exhaust the stack.
const maxDepth = 256

type parser struct {
	src   string
	lx    *Lexer
	depth int
}

// Parse normalizes src and parses it into an expression tree.
func Parse(src string) (Expr, error) {
	norm := Normalize(src)
	p := &parser{src: norm, lx: NewLexer(norm)}
	expr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if tok := p.lx.Peek(); tok.Kind != EOF {
		return nil, p.errAt(tok.Off, fmt.Sprintf("unexpected %s after expression", describe(tok)))
	}
	return expr, nil
}

// parseExpr реализует Pratt parsing для бинарных операторов.
func (p *parser) parseExpr(minPrec int) (Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, p.errAt(p.lx.Peek().Off, "expression nested too deeply")
	}

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.lx.Peek()
		prec := binaryPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			return left, nil
		}
		p.lx.Next()
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &Binary{Off: tok.Off, Op: tok.Kind, L: left, R: right}
	}
}

// parseUnary: prefix +/- bind tighter than any infix operator but looser
// than postfix '!', so -3! is -(3!).
func (p *parser) parseUnary() (Expr, error) {
	tok := p.lx.Peek()
	if tok.Kind == Plus || tok.Kind == Minus {
		p.lx.Next()
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > maxDepth {
			return nil, p.errAt(tok.Off, "expression nested too deeply")
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Off: tok.Off, Op: tok.Kind, X: x}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.lx.Peek().Kind == Bang {
		bang := p.lx.Next()
		x = &Factorial{Off: bang.Off, X: x}
	}
	return x, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.lx.Next()
	switch tok.Kind {
	case Int:
		return &Lit{Off: tok.Off, Text: tok.Text}, nil
	case Ident:
		return p.parseCall(tok)
	case LParen:
		x, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.expect(RParen); err != nil {
			return nil, err
		}
		return x, nil
	case Invalid:
		return nil, p.errAt(tok.Off, fmt.Sprintf("invalid token %q", tok.Text))
	default:
		return nil, p.errAt(tok.Off, fmt.Sprintf("expected expression, found %s", describe(tok)))
	}
}

func (p *parser) parseCall(name Token) (Expr, error) {
	if _, ok := builtins[name.Text]; !ok {
		return nil, p.errAt(name.Off, fmt.Sprintf("unknown function %q", name.Text))
	}
	if err := p.expect(LParen); err != nil {
		return nil, err
	}
	call := &Call{Off: name.Off, Name: name.Text}
	if p.lx.Peek().Kind == RParen {
		p.lx.Next()
		return call, nil
	}
	for {
		arg, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.lx.Peek().Kind != Comma {
			break
		}
		p.lx.Next()
	}
	if err := p.expect(RParen); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *parser) expect(k Kind) error {
	tok := p.lx.Next()
	if tok.Kind != k {
		return p.errAt(tok.Off, fmt.Sprintf("expected %s, found %s", k, describe(tok)))
	}
	return nil
}

func (p *parser) errAt(off int, msg string) *Error {
	return &Error{Src: p.src, Off: off, Msg: msg, Err: ErrSyntax}
}

func describe(tok Token) string {
	switch tok.Kind {
	case Int, Ident, Invalid:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	default:
		return tok.Kind.String()
	}
}
