package cst

import (
	"scriptast/ast"
	"scriptast/token"
)

// The Strip functions convert a spanned tree into its allocated ast
// counterpart. They are total: every variant a trusted parser can build
// converts without a failure path. Conversion is depth-first and
// order-preserving; keyword and delimiter tokens are dropped, optional
// trailing semicolons are dropped, and bookkeeping wrappers
// (DeclaratorEntry, CatchParam, ElseClause) are unwrapped. The spanned
// tree hands its strings over to the result and should be discarded by
// the caller afterwards.

// StripProgram converts a program root.
func StripProgram(p *Program) *ast.Program {
	return &ast.Program{Parts: stripParts(p.Parts)}
}

// StripPart converts a statement or declaration in sequence position.
func StripPart(p ProgramPart) ast.ProgramPart {
	switch p := p.(type) {
	case Stmt:
		return StripStmt(p)
	case Decl:
		return StripDecl(p)
	}
	return nil
}

// StripStmt converts a statement into its allocated counterpart.
func StripStmt(s Stmt) ast.Stmt {
	switch s := s.(type) {
	case *ExprStmt:
		return &ast.ExprStmt{Expr: StripExpr(s.Expr)}
	case *BlockStmt:
		return stripBlock(s)
	case *EmptyStmt:
		return &ast.EmptyStmt{}
	case *DebuggerStmt:
		return &ast.DebuggerStmt{}
	case *WithStmt:
		return &ast.WithStmt{
			Object: StripExpr(s.Object),
			Body:   StripStmt(s.Body),
		}
	case *ReturnStmt:
		return &ast.ReturnStmt{Value: stripOptExpr(s.Value)}
	case *LabeledStmt:
		return &ast.LabeledStmt{
			Label: stripIdent(s.Label),
			Body:  StripStmt(s.Body),
		}
	case *BreakStmt:
		return &ast.BreakStmt{Label: stripOptIdent(s.Label)}
	case *ContinueStmt:
		return &ast.ContinueStmt{Label: stripOptIdent(s.Label)}
	case *IfStmt:
		out := &ast.IfStmt{
			Test:       StripExpr(s.Test),
			Consequent: StripStmt(s.Consequent),
		}
		if s.Alternate != nil {
			out.Alternate = StripStmt(s.Alternate.Body)
		}
		return out
	case *SwitchStmt:
		cases := make([]ast.SwitchCase, len(s.Cases))
		for i, c := range s.Cases {
			cases[i] = ast.SwitchCase{
				Test:       stripOptExpr(c.Test),
				Consequent: stripParts(c.Consequent),
			}
		}
		return &ast.SwitchStmt{
			Discriminant: StripExpr(s.Discriminant),
			Cases:        cases,
		}
	case *ThrowStmt:
		return &ast.ThrowStmt{Value: StripExpr(s.Value)}
	case *TryStmt:
		out := &ast.TryStmt{Block: stripBlock(s.Block)}
		if s.Handler != nil {
			handler := &ast.CatchClause{Body: stripBlock(s.Handler.Body)}
			if s.Handler.Param != nil {
				handler.Param = StripPat(s.Handler.Param.Pat)
			}
			out.Handler = handler
		}
		if s.Finalizer != nil {
			out.Finalizer = stripBlock(s.Finalizer.Body)
		}
		return out
	case *WhileStmt:
		return &ast.WhileStmt{
			Test: StripExpr(s.Test),
			Body: StripStmt(s.Body),
		}
	case *DoWhileStmt:
		return &ast.DoWhileStmt{
			Body: StripStmt(s.Body),
			Test: StripExpr(s.Test),
		}
	case *ForStmt:
		out := &ast.ForStmt{
			Test:   stripOptExpr(s.Test),
			Update: stripOptExpr(s.Update),
			Body:   StripStmt(s.Body),
		}
		if s.Init != nil {
			out.Init = StripLoopInit(s.Init)
		}
		return out
	case *ForInStmt:
		return &ast.ForInStmt{
			Left:  StripLoopLeft(s.Left),
			Right: StripExpr(s.Right),
			Body:  StripStmt(s.Body),
		}
	case *ForOfStmt:
		return &ast.ForOfStmt{
			Left:    StripLoopLeft(s.Left),
			Right:   StripExpr(s.Right),
			Body:    StripStmt(s.Body),
			IsAwait: s.IsAwait,
		}
	case *VarStmt:
		return &ast.VarStmt{Decls: stripDeclarators(s.Decls.Decls)}
	}
	return nil
}

// StripDecl converts a declaration into its allocated counterpart.
func StripDecl(d Decl) ast.Decl {
	switch d := d.(type) {
	case *VarDecl:
		return &ast.VarDecl{
			Kind:  varKindOf(d.Decls.Keyword),
			Decls: stripDeclarators(d.Decls.Decls),
		}
	}
	return nil
}

// StripExpr converts an expression into its allocated counterpart.
func StripExpr(e Expr) ast.Expr {
	switch e := e.(type) {
	case *Ident:
		return &ast.Ident{Name: e.Name()}
	case *Lit:
		return &ast.Lit{Raw: e.Raw()}
	case *BinaryExpr:
		return &ast.BinaryExpr{
			Left:  StripExpr(e.Left),
			Op:    e.Op.Lexeme,
			Right: StripExpr(e.Right),
		}
	}
	return nil
}

// StripPat converts a binding pattern into its allocated counterpart.
func StripPat(p Pat) ast.Pat {
	switch p := p.(type) {
	case *IdentPat:
		return &ast.IdentPat{Ident: stripIdent(p.Ident)}
	}
	return nil
}

// StripLoopInit converts a for-loop init clause.
func StripLoopInit(l LoopInit) ast.LoopInit {
	switch l := l.(type) {
	case *LoopInitDecl:
		return &ast.LoopInitDecl{
			Kind:  varKindOf(l.Decls.Keyword),
			Decls: stripDeclarators(l.Decls.Decls),
		}
	case *LoopInitExpr:
		return &ast.LoopInitExpr{Expr: StripExpr(l.Expr)}
	}
	return nil
}

// StripLoopLeft converts a for-in/for-of left-hand side.
func StripLoopLeft(l LoopLeft) ast.LoopLeft {
	switch l := l.(type) {
	case *LoopLeftDecl:
		return &ast.LoopLeftDecl{
			Kind: varKindOf(l.Keyword),
			Decl: stripDeclarator(l.Decl),
		}
	case *LoopLeftExpr:
		return &ast.LoopLeftExpr{Expr: StripExpr(l.Expr)}
	case *LoopLeftPat:
		return &ast.LoopLeftPat{Pat: StripPat(l.Pat)}
	}
	return nil
}

// StripRole converts a role container, dropping the keyword and braces.
func StripRole(r *Role) *ast.Role {
	out := &ast.Role{
		Id:    stripOptIdent(r.Id),
		Props: make([]ast.Prop, len(r.Body.Props)),
	}
	for i, p := range r.Body.Props {
		out.Props[i] = ast.Prop{
			Key:   StripExpr(p.Key),
			Value: StripExpr(p.Value),
		}
	}
	return out
}

// ---- helpers ----

func stripParts(parts []ProgramPart) []ast.ProgramPart {
	result := make([]ast.ProgramPart, len(parts))
	for i, p := range parts {
		result[i] = StripPart(p)
	}
	return result
}

func stripBlock(b *BlockStmt) *ast.BlockStmt {
	return &ast.BlockStmt{Parts: stripParts(b.Parts)}
}

func stripDeclarators(entries []DeclaratorEntry) []ast.Declarator {
	result := make([]ast.Declarator, len(entries))
	for i, e := range entries {
		result[i] = stripDeclarator(e.Item)
	}
	return result
}

func stripDeclarator(d *Declarator) ast.Declarator {
	return ast.Declarator{
		Id:   StripPat(d.Id),
		Init: stripOptExpr(d.Init),
	}
}

func stripIdent(id *Ident) *ast.Ident {
	return &ast.Ident{Name: id.Name()}
}

func stripOptIdent(id *Ident) *ast.Ident {
	if id == nil {
		return nil
	}
	return stripIdent(id)
}

func stripOptExpr(e Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return StripExpr(e)
}

func varKindOf(keyword token.Token) ast.VarKind {
	switch keyword.Kind {
	case token.KW_LET:
		return ast.Let
	case token.KW_CONST:
		return ast.Const
	default:
		return ast.Var
	}
}
