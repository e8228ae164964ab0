// Package diagnostics implements the sink interface spec.md §6 assigns to
// an external collaborator: the core calls it, the driver reads its
// accumulated state to pick a process exit code.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"lox/pkg/token"
)

// Sink is the interface pkg/parser and pkg/interpreter report errors
// through. It tracks whether any error occurred so a driver can choose an
// exit code without threading error state through every call.
type Sink interface {
	ReportParseError(tok token.Token, message string)
	ReportRuntimeError(tok token.Token, message string)
	HadError() bool
	HadRuntimeError() bool
}

// Collector is the concrete, synchronous, side-effect-only Sink used by
// cmd/lox. It writes formatted diagnostics to an io.Writer (stderr by
// default) and remembers whether any error has occurred.
type Collector struct {
	out             io.Writer
	color           bool
	hadError        bool
	hadRuntimeError bool
}

// New returns a Collector writing to os.Stderr with coloring enabled.
func New() *Collector {
	return &Collector{out: os.Stderr, color: true}
}

// NewWithWriter returns a Collector writing to w; useful for tests that
// want to capture diagnostic output instead of letting it hit stderr.
func NewWithWriter(w io.Writer, useColor bool) *Collector {
	return &Collector{out: w, color: useColor}
}

// ReportParseError implements Sink. Message formatting follows spec.md
// §4.1: an EOF token reports "at end", any other token reports
// "at '<lexeme>'".
func (c *Collector) ReportParseError(tok token.Token, message string) {
	c.hadError = true
	c.report(tok, message)
}

// ReportRuntimeError implements Sink.
func (c *Collector) ReportRuntimeError(tok token.Token, message string) {
	c.hadRuntimeError = true
	c.report(tok, message)
}

// HadError reports whether any parse error has been recorded since the
// last ResetError call.
func (c *Collector) HadError() bool { return c.hadError }

// HadRuntimeError reports whether any runtime error has been recorded
// since the last ResetError call.
func (c *Collector) HadRuntimeError() bool { return c.hadRuntimeError }

// ResetError clears both flags. The REPL calls this between lines so one
// bad line does not poison exit-code selection for the rest of the session.
func (c *Collector) ResetError() {
	c.hadError = false
	c.hadRuntimeError = false
}

func (c *Collector) report(tok token.Token, message string) {
	where := fmt.Sprintf("at '%s'", tok.Lexeme)
	if tok.Kind == token.EOF {
		where = "at end"
	}
	line := fmt.Sprintf("[line %d] Error %s: %s", tok.Line, where, message)
	if c.color {
		color.New(color.FgRed).Fprintln(c.out, line)
		return
	}
	fmt.Fprintln(c.out, line)
}
