// Package cst defines the spanned syntax tree for the statement grammar.
//
// Nodes in this package retain every token they were parsed from
// (keywords, parentheses, braces, separators, and optional trailing
// semicolons) and report their exact source extent through Loc. The
// location of a composite node is always computed from its tokens and
// children, never stored.
//
// The parser builds these trees; diagnostics and tooling query Loc on
// them; once parsing is done the Strip functions convert a tree into the
// token-free ast form consumed by later stages. Loc and Strip recurse as
// deep as the source nests, so pathologically nested input can exhaust
// the stack; bound nesting upstream when the source is untrusted.
package cst

import "scriptast/span"

// Node is the capability every tree element exposes: reporting its own
// source span.
type Node interface {
	Loc() span.Span
}

// ProgramPart is a statement or declaration in sequence position (block
// bodies, switch-case consequents).
type ProgramPart interface {
	Node
	partNode()
}

// Stmt is the closed union of statement variants.
type Stmt interface {
	ProgramPart
	stmtNode()
}

// Decl is the closed union of declaration variants.
type Decl interface {
	ProgramPart
	declNode()
}

// Expr is an expression node. The full expression grammar lives upstream;
// this package carries the minimal surface statements need.
type Expr interface {
	Node
	exprNode()
}

// Pat is a binding pattern node (catch parameters, declarator targets).
type Pat interface {
	Node
	patNode()
}

// LoopInit is the first clause of a C-style for-loop header.
type LoopInit interface {
	Node
	loopInitNode()
}

// LoopLeft is the left-hand side of a for-in or for-of loop header.
type LoopLeft interface {
	Node
	loopLeftNode()
}

// Program is the root of a parsed source file.
type Program struct {
	Parts []ProgramPart
}

// Loc spans from the first part through the last; an empty program has
// the zero span.
func (p *Program) Loc() span.Span {
	if len(p.Parts) == 0 {
		return span.Span{}
	}
	return span.Cover(p.Parts[0].Loc(), p.Parts[len(p.Parts)-1].Loc())
}
