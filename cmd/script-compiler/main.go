package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/the6thdoor/script-compiler/pkg/compiler"
)

const (
	historyFile = ".script_compiler_history"
	prompt      = "> "
)

func main() {
	switch len(os.Args) {
	case 1:
		os.Exit(repl())
	case 3:
		if err := compiler.CompileFile(os.Args[1], os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [<input> <output>]\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
}

// repl reads one line at a time, compiles it and prints the result, until
// the "quit" sentinel or end of input. Compile errors are reported and the
// loop continues.
func repl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return 1
		}

		switch strings.TrimSpace(line) {
		case "quit":
			return 0
		case "":
			continue
		}

		output, err := compiler.Compile(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(output)
		ln.AppendHistory(line)
	}
}
