// Package repl implements the interactive read-eval-print loop that
// sits on top of the lexer/parser/evaluator pipeline. It is a thin
// adapter per spec: line editing, history and output coloring live
// here, not in the core pipeline.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/srclang/srclang/evaluator"
	"github.com/srclang/srclang/lexer"
	"github.com/srclang/srclang/object"
	"github.com/srclang/srclang/parser"
)

const PROMPT = ">> "

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
	bannerColor = color.New(color.FgCyan)
)

const banner = `srclang — type an expression and press enter, Ctrl-D to exit`

// Start runs the REPL loop against out, sharing one persistent
// object.Environment across every line so `let` bindings and function
// definitions from earlier lines stay visible to later ones. It
// returns when the user exits (Ctrl-D, Ctrl-C, or a readline error),
// always with a nil error — per spec, both signals exit cleanly.
func Start(out io.Writer) error {
	bannerColor.Fprintln(out, banner)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      PROMPT,
		HistoryFile: historyFilePath(),
	})
	if err != nil {
		return fmt.Errorf("repl: starting readline: %w", err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			break
		} else if err == io.EOF {
			break
		} else if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		evalLine(out, line, env)
	}

	return nil
}

// evalLine lexes, parses and evaluates one line of input against env,
// printing either each accumulated parse error (tab-prefixed, per
// spec's CLI surface) or the inspected result.
func evalLine(out io.Writer, line string, env *object.Environment) {
	l := lexer.NewLexer(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			errorColor.Fprintf(out, "\t%s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		errorColor.Fprintln(out, result.Inspect())
		return
	}

	resultColor.Fprintln(out, result.Inspect())
}
