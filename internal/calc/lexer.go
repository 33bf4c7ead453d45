package calc

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC so full-width digits and operators ("１２＋３")
// read as their ASCII forms. Offsets in errors refer to the normalized text.
func Normalize(src string) string {
	return norm.NFKC.String(src)
}

// Lexer splits normalized source into tokens.
type Lexer struct {
	src  string
	off  int
	peek *Token
}

// NewLexer creates a lexer over already normalized source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() Token {
	if lx.peek == nil {
		tok := lx.scan()
		lx.peek = &tok
	}
	return *lx.peek
}

// Next consumes and returns the next token.
func (lx *Lexer) Next() Token {
	tok := lx.Peek()
	lx.peek = nil
	return tok
}

func (lx *Lexer) scan() Token {
	lx.skipSpace()
	if lx.off >= len(lx.src) {
		return Token{Kind: EOF, Off: lx.off}
	}
	start := lx.off
	ch := lx.src[lx.off]

	switch {
	case isDec(ch):
		return lx.scanNumber()
	case isIdentStart(ch):
		for lx.off < len(lx.src) && isIdentPart(lx.src[lx.off]) {
			lx.off++
		}
		return Token{Kind: Ident, Text: lx.src[start:lx.off], Off: start}
	}

	// операторы из двух символов
	if lx.off+1 < len(lx.src) {
		switch lx.src[lx.off : lx.off+2] {
		case "<<":
			lx.off += 2
			return Token{Kind: Shl, Text: "<<", Off: start}
		case ">>":
			lx.off += 2
			return Token{Kind: Shr, Text: ">>", Off: start}
		}
	}

	kind := Invalid
	switch ch {
	case '+':
		kind = Plus
	case '-':
		kind = Minus
	case '*':
		kind = Star
	case '/':
		kind = Slash
	case '%':
		kind = Percent
	case '!':
		kind = Bang
	case '(':
		kind = LParen
	case ')':
		kind = RParen
	case ',':
		kind = Comma
	}
	if kind == Invalid {
		// съедаем целую руну, чтобы текст ошибки был читаемым
		_, size := utf8.DecodeRuneInString(lx.src[lx.off:])
		lx.off += size
		return Token{Kind: Invalid, Text: lx.src[start:lx.off], Off: start}
	}
	lx.off++
	return Token{Kind: kind, Text: lx.src[start:lx.off], Off: start}
}

// scanNumber reads [0-9][0-9_]* or 0b[01_]+. Placement of '_' is checked
// later by the literal decoder.
func (lx *Lexer) scanNumber() Token {
	start := lx.off
	if lx.src[lx.off] == '0' && lx.off+1 < len(lx.src) && (lx.src[lx.off+1] == 'b' || lx.src[lx.off+1] == 'B') {
		lx.off += 2
		for lx.off < len(lx.src) && (lx.src[lx.off] == '0' || lx.src[lx.off] == '1' || lx.src[lx.off] == '_') {
			lx.off++
		}
	} else {
		for lx.off < len(lx.src) && (isDec(lx.src[lx.off]) || lx.src[lx.off] == '_') {
			lx.off++
		}
	}
	// "12ab" is one bad literal rather than a number followed by a name
	if lx.off < len(lx.src) && isIdentPart(lx.src[lx.off]) {
		for lx.off < len(lx.src) && isIdentPart(lx.src[lx.off]) {
			lx.off++
		}
		return Token{Kind: Invalid, Text: lx.src[start:lx.off], Off: start}
	}
	return Token{Kind: Int, Text: lx.src[start:lx.off], Off: start}
}

func (lx *Lexer) skipSpace() {
	for lx.off < len(lx.src) {
		switch lx.src[lx.off] {
		case ' ', '\t', '\n', '\r':
			lx.off++
		default:
			return
		}
	}
}

func isDec(b byte) bool        { return b >= '0' && b <= '9' }
func isIdentStart(b byte) bool { return b == '_' || (b|0x20 >= 'a' && b|0x20 <= 'z') }
func isIdentPart(b byte) bool  { return isIdentStart(b) || isDec(b) }
