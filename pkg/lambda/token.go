package lambda

// Kind identifies the category of a scanned token.
type Kind int

const (
	// Lambda is the `lambda` keyword introducing an abstraction.
	Lambda Kind = iota
	// Identifier is a run of one or more letters that is not a keyword.
	Identifier
	// Dot separates an abstraction's parameter from its body.
	Dot
	// Define is the top-level binding operator `:=`.
	Define
	// OpenParen is `(`.
	OpenParen
	// CloseParen is `)`.
	CloseParen
	// Terminator is `;`, ending a statement.
	Terminator
)

var kindNames = map[Kind]string{
	Lambda:     "lambda",
	Identifier: "identifier",
	Dot:        "'.'",
	Define:     "':='",
	OpenParen:  "'('",
	CloseParen: "')'",
	Terminator: "';'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Token is a single lexical unit: its kind, the exact source text it was
// scanned from, and the 1-based line it appeared on. Tokens are produced
// once by Tokenize and never mutated.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) String() string {
	return t.Text
}
