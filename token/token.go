// Package token defines the leaf lexical tokens the syntax trees are
// built from. Tokens are produced by the lexer and retained verbatim by
// the spanned tree; each carries its kind, raw text, and source span.
package token

import (
	"fmt"

	"scriptast/span"
)

// Kind represents the type of a token.
type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF

	// Literals
	IDENT  // identifiers: x, foo, myVar
	NUMBER // numeric literals: 123, 3.14
	STRING // string literals: "hello"

	// Operators
	ASSIGN  // =
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	BANG    // !

	EQ  // ==
	NEQ // !=
	LT  // <
	LTE // <=
	GT  // >
	GTE // >=

	AND // &&
	OR  // ||

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	COLON     // :

	// Keywords
	KW_IF
	KW_ELSE
	KW_SWITCH
	KW_CASE
	KW_DEFAULT
	KW_WITH
	KW_RETURN
	KW_BREAK
	KW_CONTINUE
	KW_DEBUGGER
	KW_THROW
	KW_TRY
	KW_CATCH
	KW_FINALLY
	KW_DO
	KW_WHILE
	KW_FOR
	KW_IN
	KW_OF
	KW_VAR
	KW_LET
	KW_CONST
	KW_ROLE
	KW_TRUE
	KW_FALSE
	KW_NULL
)

var kindNames = map[Kind]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	ASSIGN:  "=",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	BANG:    "!",
	EQ:      "==",
	NEQ:     "!=",
	LT:      "<",
	LTE:     "<=",
	GT:      ">",
	GTE:     ">=",
	AND:     "&&",
	OR:      "||",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",
	COLON:     ":",

	KW_IF:       "if",
	KW_ELSE:     "else",
	KW_SWITCH:   "switch",
	KW_CASE:     "case",
	KW_DEFAULT:  "default",
	KW_WITH:     "with",
	KW_RETURN:   "return",
	KW_BREAK:    "break",
	KW_CONTINUE: "continue",
	KW_DEBUGGER: "debugger",
	KW_THROW:    "throw",
	KW_TRY:      "try",
	KW_CATCH:    "catch",
	KW_FINALLY:  "finally",
	KW_DO:       "do",
	KW_WHILE:    "while",
	KW_FOR:      "for",
	KW_IN:       "in",
	KW_OF:       "of",
	KW_VAR:      "var",
	KW_LET:      "let",
	KW_CONST:    "const",
	KW_ROLE:     "role",
	KW_TRUE:     "true",
	KW_FALSE:    "false",
	KW_NULL:     "null",
}

// String returns the human-readable name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword returns true if the kind is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= KW_IF && k <= KW_NULL
}

// IsLiteral returns true if the kind is a literal (ident/number/string).
func (k Kind) IsLiteral() bool {
	return k >= IDENT && k <= STRING
}

var keywords = map[string]Kind{
	"if":       KW_IF,
	"else":     KW_ELSE,
	"switch":   KW_SWITCH,
	"case":     KW_CASE,
	"default":  KW_DEFAULT,
	"with":     KW_WITH,
	"return":   KW_RETURN,
	"break":    KW_BREAK,
	"continue": KW_CONTINUE,
	"debugger": KW_DEBUGGER,
	"throw":    KW_THROW,
	"try":      KW_TRY,
	"catch":    KW_CATCH,
	"finally":  KW_FINALLY,
	"do":       KW_DO,
	"while":    KW_WHILE,
	"for":      KW_FOR,
	"in":       KW_IN,
	"of":       KW_OF,
	"var":      KW_VAR,
	"let":      KW_LET,
	"const":    KW_CONST,
	"role":     KW_ROLE,
	"true":     KW_TRUE,
	"false":    KW_FALSE,
	"null":     KW_NULL,
}

// LookupIdent returns the keyword Kind for ident, or IDENT if it is not a keyword.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Token represents a lexical token with its kind, raw text, and source span.
// A token is immutable once produced and is owned by exactly one tree node.
type Token struct {
	Kind   Kind      `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Span   span.Span `json:"span"`
}

// New builds a token starting at the given byte offset; the span end is
// derived from the lexeme length.
func New(kind Kind, lexeme string, start int) Token {
	return Token{
		Kind:   kind,
		Lexeme: lexeme,
		Span:   span.New(start, start+len(lexeme)),
	}
}

// Loc returns the token's intrinsic source span.
func (t Token) Loc() span.Span {
	return t.Span
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Span)
}
