package cst

import (
	"scriptast/span"
	"scriptast/token"
)

// Role represents a role container: role <name>? { <props> }
type Role struct {
	Keyword token.Token
	Id      *Ident // nil for an anonymous role
	Body    RoleBody
}

func (r *Role) Loc() span.Span {
	return span.Cover(r.Keyword.Span, r.Body.CloseBrace.Span)
}

// RoleBody is the brace-delimited property list of a role.
type RoleBody struct {
	OpenBrace  token.Token
	Props      []Prop
	CloseBrace token.Token
}

func (b RoleBody) Loc() span.Span {
	return span.Cover(b.OpenBrace.Span, b.CloseBrace.Span)
}
