package ast

import "fmt"

// VarKind is the declaration kind of a variable declaration.
type VarKind int

const (
	Var VarKind = iota
	Let
	Const
)

func (k VarKind) String() string {
	switch k {
	case Var:
		return "var"
	case Let:
		return "let"
	case Const:
		return "const"
	default:
		return fmt.Sprintf("VarKind(%d)", int(k))
	}
}

// Declarator is a single variable declarator.
type Declarator struct {
	Id   Pat
	Init Expr // nil when there is no initializer
}

// VarDecl is a variable declaration in declaration position.
type VarDecl struct {
	Kind  VarKind
	Decls []Declarator
}

func (*VarDecl) declNode() {}
func (*VarDecl) partNode() {}
