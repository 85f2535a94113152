package lambda

import "fmt"

// LexError reports a position where no token pattern matched. Remaining is
// the unconsumed text of the offending line, starting at the failure point.
type LexError struct {
	Line      int
	Remaining string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at line %d: no token matches %q", e.Line, e.Remaining)
}

// ParseError reports a token stream that does not match the grammar.
type ParseError struct {
	Line int // 0 when the stream ended prematurely
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %s", e.Msg)
	}
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
}
