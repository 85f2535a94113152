// Package codegen renders a parsed program as function-style text, one
// output line per statement.
package codegen

import (
	"fmt"
	"strings"

	"github.com/the6thdoor/script-compiler/pkg/lambda"
)

// Generate renders every statement of prog on its own line, joined with
// newlines and no trailing separator. It is pure and deterministic: the
// same program always yields byte-identical output.
func Generate(prog lambda.Program) string {
	lines := make([]string, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		lines = append(lines, genStatement(stmt))
	}
	return strings.Join(lines, "\n")
}

func genStatement(stmt lambda.Statement) string {
	switch s := stmt.(type) {
	case lambda.Definition:
		return s.Name + " = " + genTerm(s.Term)
	case lambda.LambdaTerm:
		return genTerm(s.Term)
	default:
		panic(fmt.Sprintf("codegen: unknown statement %T", stmt))
	}
}

func genTerm(t lambda.Term) string {
	switch t := t.(type) {
	case lambda.Call:
		return t.Var.Name
	case lambda.Abstr:
		return "\\" + t.Param.Name + " -> " + genBody(t.Body)
	case lambda.Apply:
		return genFn(t.Fn) + " " + genArg(t.Arg)
	default:
		panic(fmt.Sprintf("codegen: unknown term %T", t))
	}
}

// genBody renders an abstraction body. Chained abstractions stay flat
// (\f -> \x -> ...) and a bare variable needs no disambiguation; an
// application body is parenthesized.
func genBody(t lambda.Term) string {
	switch t.(type) {
	case lambda.Abstr, lambda.Call:
		return genTerm(t)
	default:
		return "(" + genTerm(t) + ")"
	}
}

// genFn renders the function side of an application. Left-nested
// application chains and bare variables read naturally without parentheses;
// an abstraction in function position must be parenthesized.
func genFn(t lambda.Term) string {
	if _, ok := t.(lambda.Abstr); ok {
		return "(" + genTerm(t) + ")"
	}
	return genTerm(t)
}

// genArg renders the argument side of an application: parenthesized unless
// it is a bare variable.
func genArg(t lambda.Term) string {
	if _, ok := t.(lambda.Call); ok {
		return genTerm(t)
	}
	return "(" + genTerm(t) + ")"
}
