package lambda

import "fmt"

// Parser is a recursive-descent parser over an immutable token slice. The
// cursor index is the only mutable state; lookahead peeks at positions past
// the cursor without consuming anything.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser positioned at the first token.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource tokenizes and parses text in one step.
func ParseSource(text string) (Program, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return Program{}, err
	}
	return NewParser(tokens).Parse()
}

// Parse consumes the whole token stream as a sequence of statements, each
// terminated by ';'. There is no error recovery: any malformed statement
// fails the whole parse.
func (p *Parser) Parse() (Program, error) {
	var prog Program
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return Program{}, err
		}
		if _, err := p.take(Terminator); err != nil {
			return Program{}, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// statement ::= identifier ':=' term | term
func (p *Parser) parseStatement() (Statement, error) {
	// A definition starts with an identifier immediately followed by ':='.
	// Peeking two tokens ahead decides without consuming, so a bare term
	// that happens to start with an identifier falls through untouched.
	if p.peekIs(0, Identifier) && p.peekIs(1, Define) {
		name := p.next().Text
		p.next() // ':='
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Definition{Name: name, Term: term}, nil
	}

	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return LambdaTerm{Term: term}, nil
}

// term ::= atom | term atom
//
// Application is left-associative: a leading atom is parsed, then further
// atoms are consumed greedily and folded into Apply nodes with the
// accumulated term as the left child.
func (p *Parser) parseTerm() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = Apply{Fn: left, Arg: right}
	}
	return left, nil
}

// atom ::= identifier | 'lambda' identifier '.' term | '(' term ')'
func (p *Parser) parseAtom() (Term, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case Identifier:
		p.next()
		return Call{Var: VarDecl{Name: tok.Text}}, nil

	case Lambda:
		p.next()
		param, err := p.take(Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.take(Dot); err != nil {
			return nil, err
		}
		// The body extends as far right as possible: a full term, not a
		// single atom, so chained abstractions nest naturally.
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return Abstr{Param: VarDecl{Name: param.Text}, Body: body}, nil

	case OpenParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.take(CloseParen); err != nil {
			return nil, err
		}
		return term, nil

	default:
		return nil, &ParseError{
			Line: tok.Line,
			Msg:  fmt.Sprintf("unexpected %s, expected a term", tok.Kind),
		}
	}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// startsAtom reports whether the next token can begin an atom, which is
// what terminates the application fold in parseTerm.
func (p *Parser) startsAtom() bool {
	if p.atEnd() {
		return false
	}
	switch p.tokens[p.pos].Kind {
	case Identifier, Lambda, OpenParen:
		return true
	}
	return false
}

func (p *Parser) peek() (Token, error) {
	if p.atEnd() {
		return Token{}, &ParseError{Msg: "unexpected end of input"}
	}
	return p.tokens[p.pos], nil
}

// peekIs reports whether the token at cursor+offset exists and has kind k.
func (p *Parser) peekIs(offset int, k Kind) bool {
	i := p.pos + offset
	return i < len(p.tokens) && p.tokens[i].Kind == k
}

// next consumes and returns the current token. Callers must have checked
// that the stream is not exhausted.
func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// take consumes the current token after checking it has the required kind.
func (p *Parser) take(k Kind) (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, &ParseError{Msg: fmt.Sprintf("unexpected end of input, expected %s", k)}
	}
	if tok.Kind != k {
		return Token{}, &ParseError{
			Line: tok.Line,
			Msg:  fmt.Sprintf("expected %s, found %s %q", k, tok.Kind, tok.Text),
		}
	}
	return p.next(), nil
}
