// Package token defines the lexical tokens produced by pkg/lexer and
// consumed by pkg/parser.
package token

import "fmt"

// Kind is a closed enumeration of lexical token categories.
type Kind int

const (
	// single-character tokens
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Colon
	Question

	// Ternary is not produced by the lexer; the parser synthesizes a
	// Ternary-kind token for a Ternary node's Op field, distinct from the
	// QUESTION token that triggered the production.
	Ternary

	// one or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var names = map[Kind]string{
	LeftParen:     "LEFT_PAREN",
	RightParen:    "RIGHT_PAREN",
	LeftBrace:     "LEFT_BRACE",
	RightBrace:    "RIGHT_BRACE",
	Comma:         "COMMA",
	Dot:           "DOT",
	Minus:         "MINUS",
	Plus:          "PLUS",
	Semicolon:     "SEMICOLON",
	Slash:         "SLASH",
	Star:          "STAR",
	Colon:         "COLON",
	Question:      "QUESTION",
	Ternary:       "TERNARY",
	Bang:          "BANG",
	BangEqual:     "BANG_EQUAL",
	Equal:         "EQUAL",
	EqualEqual:    "EQUAL_EQUAL",
	Greater:       "GREATER",
	GreaterEqual:  "GREATER_EQUAL",
	Less:          "LESS",
	LessEqual:     "LESS_EQUAL",
	Identifier:    "IDENTIFIER",
	String:        "STRING",
	Number:        "NUMBER",
	And:           "AND",
	Class:         "CLASS",
	Else:          "ELSE",
	False:         "FALSE",
	Fun:           "FUN",
	For:           "FOR",
	If:            "IF",
	Nil:           "NIL",
	Or:            "OR",
	Print:         "PRINT",
	Return:        "RETURN",
	Super:         "SUPER",
	This:          "THIS",
	True:          "TRUE",
	Var:           "VAR",
	While:         "WHILE",
	EOF:           "EOF",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved identifiers to their keyword kind. The scanner
// consults this table after accepting a maximal identifier run.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is a tagged lexical unit: kind, source text, decoded literal (for
// NUMBER/STRING tokens), and the 1-based source line it was scanned from.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any // float64 for Number, string for String, nil otherwise
	Line    int
}

func New(kind Kind, lexeme string, literal any, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", t.Kind, t.Lexeme, t.Literal)
}
