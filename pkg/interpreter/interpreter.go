// Package interpreter implements the tree-walking evaluator described in
// spec.md §4.3: it walks the statement list the parser produced, mutating
// an Environment chain and performing stdout writes, and reports the first
// runtime error it hits to a diagnostics sink.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"lox/pkg/ast"
	"lox/pkg/runtime"
	"lox/pkg/token"
)

// Sink receives runtime errors. Satisfied by pkg/diagnostics.Collector.
type Sink interface {
	ReportRuntimeError(tok token.Token, message string)
}

// RuntimeError is a non-recoverable evaluation failure attributed to the
// token (an operator, or an identifier reference) that triggered it.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// Interpreter walks statement and expression ASTs over a single global
// Environment. It is single-threaded and fully synchronous: Interpret
// runs every statement to completion, or to the first runtime error,
// before returning.
type Interpreter struct {
	global *runtime.Environment
	sink   Sink
	stdout io.Writer
}

// New returns an Interpreter with an empty global environment, reporting
// runtime errors to sink and writing `print` output to os.Stdout.
func New(sink Sink) *Interpreter {
	return &Interpreter{
		global: runtime.NewEnvironment(nil),
		sink:   sink,
		stdout: os.Stdout,
	}
}

// SetOutput redirects `print` output; tests use this to capture stdout.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.stdout = w
}

// Global exposes the root environment, e.g. so a driver can define
// builtins before the first Interpret call.
func (i *Interpreter) Global() *runtime.Environment {
	return i.global
}

// Interpret evaluates statements in order against the global environment.
// A runtime error aborts evaluation of the remaining statements in this
// call and is reported to the sink; Interpret itself never returns an
// error, matching spec.md §4.3's "reports and returns" contract.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := i.execute(stmt, i.global); err != nil {
			i.reportRuntimeError(err)
			return
		}
	}
}

func (i *Interpreter) reportRuntimeError(err error) {
	if re, ok := err.(*RuntimeError); ok {
		i.sink.ReportRuntimeError(re.Token, re.Message)
		return
	}
	// Fallback for errors that are not *RuntimeError, such as the
	// unsupported-statement error from execute, which has no token.
	i.sink.ReportRuntimeError(token.Token{Kind: token.EOF, Line: 0}, err.Error())
}

func runtimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
