package calc

// Kind is the kind of a lexical token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Int     // 123, 1_000, 0b1011
	Ident   // fact, abs, ...
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	Shl     // <<
	Shr     // >>
	Bang    // !
	LParen  // (
	RParen  // )
	Comma   // ,
)

var kindNames = [...]string{
	Invalid: "invalid",
	EOF:     "end of input",
	Int:     "integer",
	Ident:   "identifier",
	Plus:    "'+'",
	Minus:   "'-'",
	Star:    "'*'",
	Slash:   "'/'",
	Percent: "'%'",
	Shl:     "'<<'",
	Shr:     "'>>'",
	Bang:    "'!'",
	LParen:  "'('",
	RParen:  "')'",
	Comma:   "','",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is a lexeme with its byte offset in the normalized source.
type Token struct {
	Kind Kind
	Text string
	Off  int
}
