package ast

// Ident is an identifier; the name is owned by the tree.
type Ident struct {
	Name string
}

// Lit is a literal leaf holding its raw source text.
type Lit struct {
	Raw string
}

// BinaryExpr is a binary operation; the operator is kept as its raw text.
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

// Prop is a key/value entry of a role body.
type Prop struct {
	Key   Expr
	Value Expr
}

// IdentPat is a plain identifier binding pattern.
type IdentPat struct {
	Ident *Ident
}

func (*Ident) exprNode()      {}
func (*Lit) exprNode()        {}
func (*BinaryExpr) exprNode() {}

func (*IdentPat) patNode() {}
