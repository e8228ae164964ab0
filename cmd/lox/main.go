// Command lox is the CLI driver: it reads a script file or starts the
// REPL, wiring together pkg/lexer, pkg/parser, pkg/interpreter, and
// pkg/diagnostics the way spec.md §1/§6 assigns to an external driver.
package main

import (
	"fmt"
	"os"

	"lox/pkg/config"
	"lox/pkg/diagnostics"
	"lox/pkg/interpreter"
	"lox/pkg/lexer"
	"lox/pkg/parser"
	"lox/pkg/repl"
	"lox/pkg/token"
)

const cliToolVersion = "lox-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch {
	case len(args) == 0:
		return runREPL()
	case len(args) == 1 && (args[0] == "--help" || args[0] == "-h"):
		printUsage()
		return 0
	case len(args) == 1 && (args[0] == "--version" || args[0] == "-V"):
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case len(args) == 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "usage: lox [script]")
		return 64
	}
}

func runREPL() int {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		settings = config.Default()
	}
	repl.New(os.Stdin, os.Stdout, settings).Run()
	return 0
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}

	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		settings = config.Default()
	}

	sink := diagnostics.NewWithWriter(os.Stderr, settings.Color)

	tokens, lexErrs := lexer.Scan(string(source))
	for _, le := range lexErrs {
		sink.ReportParseError(token.Token{Kind: token.EOF, Line: le.Line}, le.Message)
	}
	if len(lexErrs) > 0 {
		return 65
	}

	p := parser.New(tokens, sink)
	statements := p.Parse()

	// Statements that parsed successfully still run even if other
	// declarations in the same file failed to parse and were skipped by
	// the parser's recovery — only the bad declarations, and any tokens the
	// recovery skips while looking for the next statement boundary, are lost.
	interp := interpreter.New(sink)
	interp.Interpret(statements)

	if sink.HadRuntimeError() {
		return 70
	}
	if sink.HadError() {
		return 65
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  lox            start the REPL")
	fmt.Fprintln(os.Stderr, "  lox <file>     run a script")
	fmt.Fprintln(os.Stderr, "  lox --version  print the CLI version")
}
