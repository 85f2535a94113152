package lambda

import "strings"

// Tokenize converts raw source text into an ordered token sequence.
//
// The input is split into lines and each line is tokenized independently, so
// a token never spans lines. Scanning is anchored: after whitespace is
// stripped, every remaining position must begin a token, otherwise the whole
// call fails with a *LexError and no tokens are returned.
func Tokenize(text string) ([]Token, error) {
	var tokens []Token
	for i, line := range strings.Split(text, "\n") {
		lineTokens, err := tokenizeLine(line, i+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}
	return tokens, nil
}

func tokenizeLine(line string, lineNo int) ([]Token, error) {
	var tokens []Token
	rest := strings.TrimSpace(line)
	for len(rest) > 0 {
		tok, width, ok := matchToken(rest, lineNo)
		if !ok {
			return nil, &LexError{Line: lineNo, Remaining: rest}
		}
		tokens = append(tokens, tok)
		rest = strings.TrimSpace(rest[width:])
	}
	return tokens, nil
}

// matchToken attempts each token pattern anchored at the start of rest, in
// fixed priority order, and returns the first match with its width.
//
// The `lambda` keyword must win over the generic identifier pattern; scanning
// the maximal letter run first and classifying it afterwards preserves both
// that priority and the keyword's word boundary (a run like "lambdax" is one
// identifier, not the keyword followed by "x").
func matchToken(rest string, lineNo int) (Token, int, bool) {
	if n := letterRun(rest); n > 0 {
		word := rest[:n]
		kind := Identifier
		if word == "lambda" {
			kind = Lambda
		}
		return Token{Kind: kind, Text: word, Line: lineNo}, n, true
	}
	switch {
	case rest[0] == '.':
		return Token{Kind: Dot, Text: ".", Line: lineNo}, 1, true
	case strings.HasPrefix(rest, ":="):
		return Token{Kind: Define, Text: ":=", Line: lineNo}, 2, true
	case rest[0] == '(':
		return Token{Kind: OpenParen, Text: "(", Line: lineNo}, 1, true
	case rest[0] == ')':
		return Token{Kind: CloseParen, Text: ")", Line: lineNo}, 1, true
	case rest[0] == ';':
		return Token{Kind: Terminator, Text: ";", Line: lineNo}, 1, true
	}
	return Token{}, 0, false
}

func letterRun(s string) int {
	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	return n
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
