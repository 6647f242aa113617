// Command sourcelang is the interpreter's entry point: with no
// arguments it starts the REPL; given a file path it lexes, parses and
// evaluates that file's contents once against a fresh environment.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/srclang/srclang/evaluator"
	"github.com/srclang/srclang/lexer"
	"github.com/srclang/srclang/object"
	"github.com/srclang/srclang/parser"
	"github.com/srclang/srclang/repl"
)

var errorColor = color.New(color.FgRed)

func main() {
	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1]))
		return
	}

	if err := repl.Start(os.Stdout); err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFile evaluates a single source file and reports its result the
// same way the REPL would for its last statement. It returns the
// process exit code: 1 on a read failure, parse errors, or a runtime
// error; 0 otherwise.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		return 1
	}

	l := lexer.NewLexer(string(src))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			errorColor.Fprintf(os.Stderr, "\t%s\n", msg)
		}
		return 1
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)
	if result == nil {
		return 0
	}

	if result.Type() == object.ERROR_OBJ {
		errorColor.Fprintln(os.Stderr, result.Inspect())
		return 1
	}

	fmt.Println(result.Inspect())
	return 0
}
