package cst

import (
	"scriptast/span"
	"scriptast/token"
)

// Declarator represents a single variable declarator: <id> [= <init>]
type Declarator struct {
	Id   Pat
	Eq   *token.Token // nil when there is no initializer
	Init Expr         // nil when there is no initializer
}

func (d *Declarator) Loc() span.Span {
	if d.Init != nil {
		return span.Cover(d.Id.Loc(), d.Init.Loc())
	}
	return d.Id.Loc()
}

// DeclaratorEntry pairs a declarator with the comma separating it from the
// next one. Stripping unwraps the entry to its declarator.
type DeclaratorEntry struct {
	Item  *Declarator
	Comma *token.Token // nil on the last entry
}

func (e DeclaratorEntry) Loc() span.Span {
	if e.Comma != nil {
		return span.Cover(e.Item.Loc(), e.Comma.Span)
	}
	return e.Item.Loc()
}

// VarDecls is a declaration-kind keyword followed by its declarator list:
// var a = 1, b
type VarDecls struct {
	Keyword token.Token // var, let, or const
	Decls   []DeclaratorEntry
}

func (d VarDecls) Loc() span.Span {
	if len(d.Decls) > 0 {
		return span.Cover(d.Keyword.Span, d.Decls[len(d.Decls)-1].Loc())
	}
	return d.Keyword.Span
}

// VarDecl is a variable declaration in declaration position:
// let <declarators> ;?
type VarDecl struct {
	Decls VarDecls
	Semi  *token.Token
}

func (d *VarDecl) Loc() span.Span {
	if d.Semi != nil {
		return span.Cover(d.Decls.Loc(), d.Semi.Span)
	}
	return d.Decls.Loc()
}

func (*VarDecl) declNode() {}
func (*VarDecl) partNode() {}
