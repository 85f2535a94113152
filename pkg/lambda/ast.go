package lambda

import "fmt"

// VarDecl wraps a variable name: a non-empty run of letters, guaranteed by
// the lexer. It is used both to declare a bound parameter and to reference
// a variable.
type VarDecl struct {
	Name string
}

func (v VarDecl) String() string {
	return v.Name
}

// Term represents a lambda calculus term. The three variants are Call,
// Abstr and Apply; a Term tree never has missing children.
type Term interface {
	fmt.Stringer
	termNode()
}

// Call represents a bare variable reference.
type Call struct {
	Var VarDecl
}

func (c Call) termNode() {}

func (c Call) String() string {
	return c.Var.Name
}

// Abstr represents an abstraction: it binds one parameter over a body term.
type Abstr struct {
	Param VarDecl
	Body  Term
}

func (a Abstr) termNode() {}

func (a Abstr) String() string {
	return fmt.Sprintf("(lambda %s. %s)", a.Param, a.Body)
}

// Apply represents an application of a function term to an argument term.
// Application chains nest leftward by construction.
type Apply struct {
	Fn  Term
	Arg Term
}

func (a Apply) termNode() {}

func (a Apply) String() string {
	return fmt.Sprintf("(%s %s)", a.Fn, a.Arg)
}

// Statement is a top-level program unit: a bare term or a named definition.
type Statement interface {
	fmt.Stringer
	stmtNode()
}

// LambdaTerm is a top-level bare expression.
type LambdaTerm struct {
	Term Term
}

func (s LambdaTerm) stmtNode() {}

func (s LambdaTerm) String() string {
	return s.Term.String()
}

// Definition binds a top-level name to a term. No resolution occurs in this
// front-end, so the name may reference anything or nothing.
type Definition struct {
	Name string
	Term Term
}

func (s Definition) stmtNode() {}

func (s Definition) String() string {
	return fmt.Sprintf("%s := %s", s.Name, s.Term)
}

// Program is an ordered sequence of statements. Order mirrors source order
// and determines generation order; statements have no semantic dependency
// on each other.
type Program struct {
	Statements []Statement
}
