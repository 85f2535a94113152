package codegen_test

import (
	"testing"

	"github.com/the6thdoor/script-compiler/pkg/codegen"
	"github.com/the6thdoor/script-compiler/pkg/lambda"
)

func call(name string) lambda.Term {
	return lambda.Call{Var: lambda.VarDecl{Name: name}}
}

func abstr(param string, body lambda.Term) lambda.Term {
	return lambda.Abstr{Param: lambda.VarDecl{Name: param}, Body: body}
}

func apply(fn, arg lambda.Term) lambda.Term {
	return lambda.Apply{Fn: fn, Arg: arg}
}

// genTerm renders a single bare-term statement.
func genTerm(t lambda.Term) string {
	return codegen.Generate(lambda.Program{
		Statements: []lambda.Statement{lambda.LambdaTerm{Term: t}},
	})
}

// TestGenerate_Parenthesization covers the parenthesization rules on
// directly-constructed trees: arguments need parens unless they are bare
// variables, left-nested application chains stay flat, and abstractions in
// function position are wrapped.
func TestGenerate_Parenthesization(t *testing.T) {
	tests := []struct {
		name string
		term lambda.Term
		want string
	}{
		{"variable", call("x"), "x"},
		{"argument needs parens", apply(call("f"), apply(call("g"), call("h"))), "f (g h)"},
		{"left-nested chain stays flat", apply(apply(call("f"), call("g")), call("h")), "f g h"},
		{"abstraction argument", apply(call("f"), abstr("x", call("x"))), "f (\\x -> x)"},
		{"abstraction in function position", apply(abstr("x", call("x")), call("y")), "(\\x -> x) y"},
		{"identity", abstr("x", call("x")), "\\x -> x"},
		{"chained abstractions stay flat", abstr("f", abstr("x", call("f"))), "\\f -> \\x -> f"},
		{"application body wrapped", abstr("x", apply(call("f"), call("x"))), "\\x -> (f x)"},
		{
			"church two",
			abstr("f", abstr("x", apply(call("f"), apply(call("f"), call("x"))))),
			"\\f -> \\x -> (f (f x))",
		},
		{
			"deep left chain",
			apply(apply(apply(call("f"), call("g")), call("h")), call("k")),
			"f g h k",
		},
		{
			"mixed chain",
			apply(apply(call("x"), apply(call("y"), call("z"))), call("w")),
			"x (y z) w",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := genTerm(tt.term); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestGenerate_FromSource runs the whole front-end and checks exact output
// text for each compiled statement.
func TestGenerate_FromSource(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"x;", "x"},
		{"x y z;", "x y z"},
		{"f (g h);", "f (g h)"},
		{"lambda x. x;", "\\x -> x"},
		{"lambda x. f x;", "\\x -> (f x)"},
		{"lambda f. lambda x. f x;", "\\f -> \\x -> (f x)"},
		{"(lambda x. x) y;", "(\\x -> x) y"},
		{"id := lambda x. x;", "id = \\x -> x"},
		{"omega := m m;", "omega = m m"},
		{
			"y := lambda f. (lambda x. f (x x)) (lambda x. f (x x));",
			"y = \\f -> ((\\x -> (f (x x))) (\\x -> (f (x x))))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			prog, err := lambda.ParseSource(tt.source)
			if err != nil {
				t.Fatalf("ParseSource failed: %v", err)
			}
			if got := codegen.Generate(prog); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestGenerate_StatementLines checks one output line per statement, joined
// by newlines with no trailing separator.
func TestGenerate_StatementLines(t *testing.T) {
	prog, err := lambda.ParseSource("id := lambda x. x;\nid y;")
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	want := "id = \\x -> x\nid y"
	if got := codegen.Generate(prog); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerate_EmptyProgram(t *testing.T) {
	if got := codegen.Generate(lambda.Program{}); got != "" {
		t.Errorf("empty program rendered %q, want empty string", got)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	prog, err := lambda.ParseSource("compose := lambda f. lambda g. lambda x. f (g x);")
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	first := codegen.Generate(prog)
	for i := 0; i < 10; i++ {
		if got := codegen.Generate(prog); got != first {
			t.Fatalf("run %d: output changed from %q to %q", i, first, got)
		}
	}
}
