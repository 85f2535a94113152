// Package compiler wires the lexer, parser and code generator into the
// one-shot compile pipeline.
package compiler

import (
	"fmt"
	"os"

	"github.com/the6thdoor/script-compiler/pkg/codegen"
	"github.com/the6thdoor/script-compiler/pkg/lambda"
)

// Compile translates lambda-dialect source text into function-style output
// text. It propagates the front-end's lexical or parse error rather than
// returning a partial result. Every call constructs fresh state, so Compile
// is safe for concurrent use.
func Compile(source string) (string, error) {
	prog, err := lambda.ParseSource(source)
	if err != nil {
		return "", err
	}
	return codegen.Generate(prog), nil
}

// CompileFile reads the source at srcPath, compiles it and writes the
// result to outPath with a trailing newline.
func CompileFile(srcPath, outPath string) error {
	source, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	output, err := Compile(string(source))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
