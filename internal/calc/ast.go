package calc

// Expr is a parsed expression node.
type Expr interface {
	// Pos is the byte offset of the node in the normalized source.
	Pos() int
}

// Lit is an integer literal, kept as text until evaluation.
type Lit struct {
	Off  int
	Text string
}

// Unary is a prefix '+' or '-'.
type Unary struct {
	Off int
	Op  Kind
	X   Expr
}

// Binary is an infix operation.
type Binary struct {
	Off  int // offset of the operator
	Op   Kind
	L, R Expr
}

// Factorial is the postfix '!'.
type Factorial struct {
	Off int // offset of '!'
	X   Expr
}

// Call is a builtin function call such as slice(x, 0, 8).
type Call struct {
	Off  int
	Name string
	Args []Expr
}

func (e *Lit) Pos() int       { return e.Off }
func (e *Unary) Pos() int     { return e.Off }
func (e *Binary) Pos() int    { return e.Off }
func (e *Factorial) Pos() int { return e.Off }
func (e *Call) Pos() int      { return e.Off }
