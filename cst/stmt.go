package cst

import (
	"scriptast/span"
	"scriptast/token"
)

// ============================================================
// Statement variants
// ============================================================

// ExprStmt represents an expression in statement position: <expr> ;?
type ExprStmt struct {
	Expr Expr
	Semi *token.Token // optional trailing semicolon
}

func (s *ExprStmt) Loc() span.Span {
	if s.Semi != nil {
		return span.Cover(s.Expr.Loc(), s.Semi.Span)
	}
	return s.Expr.Loc()
}

// BlockStmt represents a brace-delimited sequence of program parts.
type BlockStmt struct {
	OpenBrace  token.Token
	Parts      []ProgramPart
	CloseBrace token.Token
}

func (s *BlockStmt) Loc() span.Span {
	return span.Cover(s.OpenBrace.Span, s.CloseBrace.Span)
}

// EmptyStmt represents a lone semicolon.
type EmptyStmt struct {
	Semi token.Token
}

func (s *EmptyStmt) Loc() span.Span {
	return s.Semi.Span
}

// DebuggerStmt represents the debugger keyword: debugger ;?
type DebuggerStmt struct {
	Keyword token.Token
	Semi    *token.Token
}

func (s *DebuggerStmt) Loc() span.Span {
	if s.Semi != nil {
		return span.Cover(s.Keyword.Span, s.Semi.Span)
	}
	return s.Keyword.Span
}

// WithStmt represents: with ( <object> ) <body>
type WithStmt struct {
	Keyword    token.Token
	OpenParen  token.Token
	Object     Expr
	CloseParen token.Token
	Body       Stmt
}

func (s *WithStmt) Loc() span.Span {
	return span.Cover(s.Keyword.Span, s.Body.Loc())
}

// ReturnStmt represents: return <value>? ;?
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil when returning without a value
	Semi    *token.Token
}

func (s *ReturnStmt) Loc() span.Span {
	if s.Semi != nil {
		return span.Cover(s.Keyword.Span, s.Semi.Span)
	}
	if s.Value != nil {
		return span.Cover(s.Keyword.Span, s.Value.Loc())
	}
	return s.Keyword.Span
}

// LabeledStmt represents: <label> : <body>
type LabeledStmt struct {
	Label *Ident
	Colon token.Token
	Body  Stmt
}

func (s *LabeledStmt) Loc() span.Span {
	return span.Cover(s.Label.Loc(), s.Body.Loc())
}

// BreakStmt represents: break <label>? ;?
type BreakStmt struct {
	Keyword token.Token
	Label   *Ident // nil for an unlabeled break
	Semi    *token.Token
}

func (s *BreakStmt) Loc() span.Span {
	if s.Semi != nil {
		return span.Cover(s.Keyword.Span, s.Semi.Span)
	}
	if s.Label != nil {
		return span.Cover(s.Keyword.Span, s.Label.Loc())
	}
	return s.Keyword.Span
}

// ContinueStmt represents: continue <label>? ;?
type ContinueStmt struct {
	Keyword token.Token
	Label   *Ident // nil for an unlabeled continue
	Semi    *token.Token
}

func (s *ContinueStmt) Loc() span.Span {
	if s.Semi != nil {
		return span.Cover(s.Keyword.Span, s.Semi.Span)
	}
	if s.Label != nil {
		return span.Cover(s.Keyword.Span, s.Label.Loc())
	}
	return s.Keyword.Span
}

// IfStmt represents: if ( <test> ) <consequent> [else <body>]
type IfStmt struct {
	Keyword    token.Token
	OpenParen  token.Token
	Test       Expr
	CloseParen token.Token
	Consequent Stmt
	Alternate  *ElseClause // nil when there is no else branch
}

func (s *IfStmt) Loc() span.Span {
	if s.Alternate != nil {
		return span.Cover(s.Keyword.Span, s.Alternate.Loc())
	}
	return span.Cover(s.Keyword.Span, s.Consequent.Loc())
}

// ElseClause pairs an else keyword with its body.
type ElseClause struct {
	Keyword token.Token
	Body    Stmt
}

func (c ElseClause) Loc() span.Span {
	return span.Cover(c.Keyword.Span, c.Body.Loc())
}

// SwitchStmt represents: switch ( <discriminant> ) { <cases> }
type SwitchStmt struct {
	Keyword      token.Token
	OpenParen    token.Token
	Discriminant Expr
	CloseParen   token.Token
	OpenBrace    token.Token
	Cases        []SwitchCase
	CloseBrace   token.Token
}

// Loc ends at the discriminant's closing parenthesis; the case list and
// closing brace are not part of the reported span.
func (s *SwitchStmt) Loc() span.Span {
	return span.Cover(s.Keyword.Span, s.CloseParen.Span)
}

// SwitchCase represents a single case or default arm of a switch.
type SwitchCase struct {
	Keyword    token.Token
	Test       Expr // nil for the default arm
	Colon      token.Token
	Consequent []ProgramPart
}

func (c SwitchCase) Loc() span.Span {
	if len(c.Consequent) > 0 {
		return span.Cover(c.Keyword.Span, c.Consequent[len(c.Consequent)-1].Loc())
	}
	return span.Cover(c.Keyword.Span, c.Colon.Span)
}

// ThrowStmt represents: throw <value> ;?
type ThrowStmt struct {
	Keyword token.Token
	Value   Expr
	Semi    *token.Token
}

func (s *ThrowStmt) Loc() span.Span {
	if s.Semi != nil {
		return span.Cover(s.Keyword.Span, s.Semi.Span)
	}
	return span.Cover(s.Keyword.Span, s.Value.Loc())
}

// TryStmt represents: try <block> [catch ...] [finally ...]
type TryStmt struct {
	Keyword   token.Token
	Block     *BlockStmt
	Handler   *CatchClause   // nil when there is no catch
	Finalizer *FinallyClause // nil when there is no finally
}

func (s *TryStmt) Loc() span.Span {
	if s.Finalizer != nil {
		return span.Cover(s.Keyword.Span, s.Finalizer.Loc())
	}
	if s.Handler != nil {
		return span.Cover(s.Keyword.Span, s.Handler.Loc())
	}
	return span.Cover(s.Keyword.Span, s.Block.Loc())
}

// CatchClause represents: catch [( <param> )] <body>
type CatchClause struct {
	Keyword token.Token
	Param   *CatchParam // nil for a bare catch
	Body    *BlockStmt
}

func (c CatchClause) Loc() span.Span {
	return span.Cover(c.Keyword.Span, c.Body.Loc())
}

// CatchParam wraps a catch binding in its parentheses.
type CatchParam struct {
	OpenParen  token.Token
	Pat        Pat
	CloseParen token.Token
}

func (p CatchParam) Loc() span.Span {
	return span.Cover(p.OpenParen.Span, p.CloseParen.Span)
}

// FinallyClause represents: finally <body>
type FinallyClause struct {
	Keyword token.Token
	Body    *BlockStmt
}

func (c FinallyClause) Loc() span.Span {
	return span.Cover(c.Keyword.Span, c.Body.Loc())
}

// WhileStmt represents: while ( <test> ) <body>
type WhileStmt struct {
	Keyword    token.Token
	OpenParen  token.Token
	Test       Expr
	CloseParen token.Token
	Body       Stmt
}

func (s *WhileStmt) Loc() span.Span {
	return span.Cover(s.Keyword.Span, s.Body.Loc())
}

// DoWhileStmt represents: do <body> while ( <test> ) ;?
type DoWhileStmt struct {
	Do         token.Token
	Body       Stmt
	While      token.Token
	OpenParen  token.Token
	Test       Expr
	CloseParen token.Token
	Semi       *token.Token
}

// Loc ends at the test's closing parenthesis; the optional trailing
// semicolon is not part of the reported span.
func (s *DoWhileStmt) Loc() span.Span {
	return span.Cover(s.Do.Span, s.CloseParen.Span)
}

// ForStmt represents: for ( <init>? ; <test>? ; <update>? ) <body>
type ForStmt struct {
	Keyword    token.Token
	OpenParen  token.Token
	Init       LoopInit // nil when the init clause is empty
	Semi1      token.Token
	Test       Expr // nil when the test clause is empty
	Semi2      token.Token
	Update     Expr // nil when the update clause is empty
	CloseParen token.Token
	Body       Stmt
}

func (s *ForStmt) Loc() span.Span {
	return span.Cover(s.Keyword.Span, s.Body.Loc())
}

// ForInStmt represents: for ( <left> in <right> ) <body>
type ForInStmt struct {
	Keyword    token.Token
	OpenParen  token.Token
	Left       LoopLeft
	In         token.Token
	Right      Expr
	CloseParen token.Token
	Body       Stmt
}

func (s *ForInStmt) Loc() span.Span {
	return span.Cover(s.Keyword.Span, s.Body.Loc())
}

// ForOfStmt represents: for [await] ( <left> of <right> ) <body>
type ForOfStmt struct {
	Keyword    token.Token
	OpenParen  token.Token
	Left       LoopLeft
	Of         token.Token
	Right      Expr
	CloseParen token.Token
	Body       Stmt
	IsAwait    bool
}

func (s *ForOfStmt) Loc() span.Span {
	return span.Cover(s.Keyword.Span, s.Body.Loc())
}

// VarStmt represents a var declaration in statement position:
// var <declarators> ;?
type VarStmt struct {
	Decls VarDecls
	Semi  *token.Token
}

func (s *VarStmt) Loc() span.Span {
	if s.Semi != nil {
		return span.Cover(s.Decls.Loc(), s.Semi.Span)
	}
	return s.Decls.Loc()
}

// ============================================================
// Loop headers
// ============================================================

// LoopInitDecl is a declaration-form for-loop initializer:
// for (var i = 0; ...)
type LoopInitDecl struct {
	Decls VarDecls
}

func (l *LoopInitDecl) Loc() span.Span {
	return l.Decls.Loc()
}

// LoopInitExpr is an expression-form for-loop initializer: for (i = 0; ...)
type LoopInitExpr struct {
	Expr Expr
}

func (l *LoopInitExpr) Loc() span.Span {
	return l.Expr.Loc()
}

// LoopLeftDecl is a declaration-form loop left-hand side:
// for (var k in ...), with exactly one declarator.
type LoopLeftDecl struct {
	Keyword token.Token // var, let, or const
	Decl    *Declarator
}

func (l *LoopLeftDecl) Loc() span.Span {
	return span.Cover(l.Keyword.Span, l.Decl.Loc())
}

// LoopLeftExpr is an expression-form loop left-hand side: for (k in ...)
type LoopLeftExpr struct {
	Expr Expr
}

func (l *LoopLeftExpr) Loc() span.Span {
	return l.Expr.Loc()
}

// LoopLeftPat is a pattern-form loop left-hand side.
type LoopLeftPat struct {
	Pat Pat
}

func (l *LoopLeftPat) Loc() span.Span {
	return l.Pat.Loc()
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
