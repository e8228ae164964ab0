// Package repl implements the interactive read-eval-print loop. It is an
// ambient driver concern (spec.md §1 assigns the REPL loop to an external
// collaborator) built here so the module is runnable end to end.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"lox/pkg/config"
	"lox/pkg/diagnostics"
	"lox/pkg/interpreter"
	"lox/pkg/lexer"
	"lox/pkg/parser"
	"lox/pkg/token"
)

// REPL reads one line at a time, parses it as a complete program, and
// evaluates it against a persistent Interpreter so bindings survive
// across lines.
type REPL struct {
	in       *bufio.Scanner
	out      io.Writer
	settings config.Settings
	sink     *diagnostics.Collector
	interp   *interpreter.Interpreter
}

// New constructs a REPL reading from in and writing prompts/output to out.
func New(in io.Reader, out io.Writer, settings config.Settings) *REPL {
	sink := diagnostics.NewWithWriter(out, settings.Color)
	interp := interpreter.New(sink)
	interp.SetOutput(out)
	return &REPL{
		in:       bufio.NewScanner(in),
		out:      out,
		settings: settings,
		sink:     sink,
		interp:   interp,
	}
}

// Run drives the loop until the input is exhausted (EOF on stdin, or a
// closed reader). A parse or runtime error on one line is reported and
// the loop continues — the diagnostic flags are reset between lines so no
// single bad line affects a later exit-code decision.
func (r *REPL) Run() {
	for {
		r.printPrompt()
		if !r.in.Scan() {
			return
		}
		line := r.in.Text()
		if line == "" {
			continue
		}
		r.evalLine(line)
		r.sink.ResetError()
	}
}

func (r *REPL) printPrompt() {
	if r.settings.Color {
		color.New(color.FgGreen).Fprint(r.out, r.settings.Prompt)
		return
	}
	fmt.Fprint(r.out, r.settings.Prompt)
}

func (r *REPL) evalLine(line string) {
	tokens, lexErrs := lexer.Scan(line)
	for _, le := range lexErrs {
		r.sink.ReportParseError(token.Token{Kind: token.EOF, Line: le.Line}, le.Message)
	}
	if len(lexErrs) > 0 {
		return
	}

	p := parser.New(tokens, r.sink)
	statements := p.Parse()
	r.interp.Interpret(statements)
}
