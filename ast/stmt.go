package ast

// ============================================================
// Statement variants
// ============================================================

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	Expr Expr
}

// BlockStmt is a sequence of program parts.
type BlockStmt struct {
	Parts []ProgramPart
}

// EmptyStmt is a statement with no content.
type EmptyStmt struct{}

// DebuggerStmt is the debugger statement.
type DebuggerStmt struct{}

// WithStmt puts an object at the top of the identifier search chain for
// its body.
type WithStmt struct {
	Object Expr
	Body   Stmt
}

// ReturnStmt returns from the enclosing function.
type ReturnStmt struct {
	Value Expr // nil when returning without a value
}

// LabeledStmt names a statement so break/continue can target it.
type LabeledStmt struct {
	Label *Ident
	Body  Stmt
}

// BreakStmt exits a loop, switch, or labeled statement.
type BreakStmt struct {
	Label *Ident // nil for an unlabeled break
}

// ContinueStmt short-circuits to the next loop iteration.
type ContinueStmt struct {
	Label *Ident // nil for an unlabeled continue
}

// IfStmt is a conditional; Alternate is the else branch, unwrapped from
// its clause.
type IfStmt struct {
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil when there is no else branch
}

// SwitchStmt dispatches over its discriminant.
type SwitchStmt struct {
	Discriminant Expr
	Cases        []SwitchCase
}

// SwitchCase is one case or default arm of a switch.
type SwitchCase struct {
	Test       Expr // nil for the default arm
	Consequent []ProgramPart
}

// ThrowStmt raises its value as an error.
type ThrowStmt struct {
	Value Expr
}

// TryStmt is a try block with optional handler and finalizer.
type TryStmt struct {
	Block     *BlockStmt
	Handler   *CatchClause // nil when there is no catch
	Finalizer *BlockStmt   // nil when there is no finally
}

// CatchClause is the error handling arm of a try statement.
type CatchClause struct {
	Param Pat // nil for a bare catch
	Body  *BlockStmt
}

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Test Expr
	Body Stmt
}

// DoWhileStmt is a post-tested loop.
type DoWhileStmt struct {
	Body Stmt
	Test Expr
}

// ForStmt is a C-style loop; any header clause may be absent.
type ForStmt struct {
	Init   LoopInit // nil when the init clause is empty
	Test   Expr     // nil when the test clause is empty
	Update Expr     // nil when the update clause is empty
	Body   Stmt
}

// ForInStmt iterates over the keys of an object.
type ForInStmt struct {
	Left  LoopLeft
	Right Expr
	Body  Stmt
}

// ForOfStmt iterates over the values of an iterable.
type ForOfStmt struct {
	Left    LoopLeft
	Right   Expr
	Body    Stmt
	IsAwait bool
}

// VarStmt is a var declaration in statement position. Statement-position
// declarations are always var, so the kind is not recorded.
type VarStmt struct {
	Decls []Declarator
}

// ============================================================
// Loop headers
// ============================================================

// LoopInitDecl is a declaration-form for-loop initializer.
type LoopInitDecl struct {
	Kind  VarKind
	Decls []Declarator
}

// LoopInitExpr is an expression-form for-loop initializer.
type LoopInitExpr struct {
	Expr Expr
}

// LoopLeftDecl is a declaration-form loop left-hand side.
type LoopLeftDecl struct {
	Kind VarKind
	Decl Declarator
}

// LoopLeftExpr is an expression-form loop left-hand side.
type LoopLeftExpr struct {
	Expr Expr
}

// LoopLeftPat is a pattern-form loop left-hand side.
type LoopLeftPat struct {
	Pat Pat
}

// ============================================================
// Union markers
// ============================================================

func (*ExprStmt) stmtNode()     {}
func (*BlockStmt) stmtNode()    {}
func (*EmptyStmt) stmtNode()    {}
func (*DebuggerStmt) stmtNode() {}
func (*WithStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()   {}
func (*LabeledStmt) stmtNode()  {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*IfStmt) stmtNode()       {}
func (*SwitchStmt) stmtNode()   {}
func (*ThrowStmt) stmtNode()    {}
func (*TryStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()      {}
func (*ForInStmt) stmtNode()    {}
func (*ForOfStmt) stmtNode()    {}
func (*VarStmt) stmtNode()      {}

func (*ExprStmt) partNode()     {}
func (*BlockStmt) partNode()    {}
func (*EmptyStmt) partNode()    {}
func (*DebuggerStmt) partNode() {}
func (*WithStmt) partNode()     {}
func (*ReturnStmt) partNode()   {}
func (*LabeledStmt) partNode()  {}
func (*BreakStmt) partNode()    {}
func (*ContinueStmt) partNode() {}
func (*IfStmt) partNode()       {}
func (*SwitchStmt) partNode()   {}
func (*ThrowStmt) partNode()    {}
func (*TryStmt) partNode()      {}
func (*WhileStmt) partNode()    {}
func (*DoWhileStmt) partNode()  {}
func (*ForStmt) partNode()      {}
func (*ForInStmt) partNode()    {}
func (*ForOfStmt) partNode()    {}
func (*VarStmt) partNode()      {}

func (*LoopInitDecl) loopInitNode() {}
func (*LoopInitExpr) loopInitNode() {}

func (*LoopLeftDecl) loopLeftNode() {}
func (*LoopLeftExpr) loopLeftNode() {}
func (*LoopLeftPat) loopLeftNode()  {}
