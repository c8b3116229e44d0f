package cst

import (
	"scriptast/span"
	"scriptast/token"
)

// The statement grammar only needs a thin expression surface: identifiers,
// literals, and binary operations cover every slot the statements hold.
// The full expression grammar is the parser's concern and plugs into the
// same Node and Strip contracts.

// Ident represents an identifier: a variable reference, a statement label,
// a role name, or a property key.
type Ident struct {
	Token token.Token
}

func (e *Ident) Loc() span.Span {
	return e.Token.Span
}

// Name returns the identifier's raw text.
func (e *Ident) Name() string {
	return e.Token.Lexeme
}

// Lit represents a literal leaf: a number, string, boolean, or null token.
type Lit struct {
	Token token.Token
}

func (e *Lit) Loc() span.Span {
	return e.Token.Span
}

// Raw returns the literal's raw source text.
func (e *Lit) Raw() string {
	return e.Token.Lexeme
}

// BinaryExpr represents: <left> <op> <right>
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *BinaryExpr) Loc() span.Span {
	return span.Cover(e.Left.Loc(), e.Right.Loc())
}

// Prop is a key/value entry: <key> : <value>
type Prop struct {
	Key   Expr
	Colon token.Token
	Value Expr
}

func (p Prop) Loc() span.Span {
	return span.Cover(p.Key.Loc(), p.Value.Loc())
}

// IdentPat is a plain identifier binding pattern.
type IdentPat struct {
	Ident *Ident
}

func (p *IdentPat) Loc() span.Span {
	return p.Ident.Loc()
}

func (*Ident) exprNode()      {}
func (*Lit) exprNode()        {}
func (*BinaryExpr) exprNode() {}

func (*IdentPat) patNode() {}
