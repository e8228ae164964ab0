package diagnostics_test

import (
	"bytes"
	"strings"
	"testing"

	"lox/pkg/diagnostics"
	"lox/pkg/token"
)

func TestReportParseErrorSetsHadErrorAndFormatsLocation(t *testing.T) {
	var buf bytes.Buffer
	c := diagnostics.NewWithWriter(&buf, false)

	c.ReportParseError(token.New(token.Semicolon, ";", nil, 3), "Expect expression.")

	if !c.HadError() {
		t.Fatalf("expected HadError to be true")
	}
	if c.HadRuntimeError() {
		t.Fatalf("expected HadRuntimeError to remain false")
	}
	got := buf.String()
	want := "[line 3] Error at ';': Expect expression.\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReportAtEndOfFileUsesAtEndPhrase(t *testing.T) {
	var buf bytes.Buffer
	c := diagnostics.NewWithWriter(&buf, false)

	c.ReportParseError(token.New(token.EOF, "", nil, 5), "Expect ';' after value.")

	if !strings.Contains(buf.String(), "at end") {
		t.Fatalf("got %q, want it to mention 'at end'", buf.String())
	}
}

func TestReportRuntimeErrorSetsOnlyRuntimeFlag(t *testing.T) {
	var buf bytes.Buffer
	c := diagnostics.NewWithWriter(&buf, false)

	c.ReportRuntimeError(token.New(token.Plus, "+", nil, 1), "Operand must be a number.")

	if !c.HadRuntimeError() {
		t.Fatalf("expected HadRuntimeError to be true")
	}
	if c.HadError() {
		t.Fatalf("expected HadError to remain false")
	}
}

func TestResetErrorClearsBothFlags(t *testing.T) {
	var buf bytes.Buffer
	c := diagnostics.NewWithWriter(&buf, false)

	c.ReportParseError(token.New(token.EOF, "", nil, 1), "bad")
	c.ReportRuntimeError(token.New(token.EOF, "", nil, 1), "bad")

	c.ResetError()

	if c.HadError() || c.HadRuntimeError() {
		t.Fatalf("expected both flags cleared after ResetError")
	}
}
