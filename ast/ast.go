// Package ast defines the allocated syntax tree for the statement grammar:
// the same variant shapes as package cst with all tokens, delimiters, and
// source spans removed. Every string in an allocated tree is owned by the
// tree; nothing points back into the original source text.
//
// Allocated trees are produced once from spanned trees by the cst.Strip
// functions and flow to downstream stages. Whether a statement carried a
// trailing semicolon is not recorded here; that information exists only in
// the spanned form.
package ast

// ProgramPart is a statement or declaration in sequence position.
type ProgramPart interface {
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

// Expr is an expression node.
type Expr interface {
	exprNode()
}

// Pat is a binding pattern node.
type Pat interface {
	patNode()
}

// LoopInit is the first clause of a C-style for-loop header.
type LoopInit interface {
	loopInitNode()
}

// LoopLeft is the left-hand side of a for-in or for-of loop header.
type LoopLeft interface {
	loopLeftNode()
}

// Program is the root of a converted source file.
type Program struct {
	Parts []ProgramPart
}
