package cst

import "scriptast/token"

// tokenRow lays tokens out left to right with a single space between
// them, so fixtures get realistic spans without hand-counted offsets.
type tokenRow struct {
	pos int
}

func (r *tokenRow) tok(kind token.Kind, lexeme string) token.Token {
	t := token.New(kind, lexeme, r.pos)
	r.pos = t.Span.End + 1
	return t
}

// kw emits a keyword or punctuation token whose lexeme is the kind's name.
func (r *tokenRow) kw(kind token.Kind) token.Token {
	return r.tok(kind, kind.String())
}

func (r *tokenRow) semi() *token.Token {
	t := r.tok(token.SEMICOLON, ";")
	return &t
}

func (r *tokenRow) ident(name string) *Ident {
	return &Ident{Token: r.tok(token.IDENT, name)}
}

func (r *tokenRow) num(raw string) *Lit {
	return &Lit{Token: r.tok(token.NUMBER, raw)}
}

// exprStmt emits `<name> ;` as a statement, for use as a loop or clause body.
func (r *tokenRow) exprStmt(name string) *ExprStmt {
	return &ExprStmt{Expr: r.ident(name), Semi: r.semi()}
}

// block emits `{ <name> ; }`.
func (r *tokenRow) block(name string) *BlockStmt {
	open := r.kw(token.LBRACE)
	inner := r.exprStmt(name)
	return &BlockStmt{
		OpenBrace:  open,
		Parts:      []ProgramPart{inner},
		CloseBrace: r.kw(token.RBRACE),
	}
}

// declarator emits `<name> = <raw>`.
func (r *tokenRow) declarator(name, raw string) *Declarator {
	id := &IdentPat{Ident: r.ident(name)}
	eq := r.kw(token.ASSIGN)
	return &Declarator{Id: id, Eq: &eq, Init: r.num(raw)}
}

// varDecls emits `var <name> = <raw>`.
func (r *tokenRow) varDecls(name, raw string) VarDecls {
	keyword := r.kw(token.KW_VAR)
	return VarDecls{
		Keyword: keyword,
		Decls:   []DeclaratorEntry{{Item: r.declarator(name, raw)}},
	}
}

// allStmtFixtures builds one instance of every statement variant, each
// laid out from offset 0, with every optional slot populated.
func allStmtFixtures() []Stmt {
	var stmts []Stmt

	r := &tokenRow{}
	stmts = append(stmts, &ExprStmt{Expr: r.ident("x"), Semi: r.semi()})

	r = &tokenRow{}
	stmts = append(stmts, r.block("x"))

	r = &tokenRow{}
	stmts = append(stmts, &EmptyStmt{Semi: *r.semi()})

	r = &tokenRow{}
	stmts = append(stmts, &DebuggerStmt{Keyword: r.kw(token.KW_DEBUGGER), Semi: r.semi()})

	r = &tokenRow{}
	stmts = append(stmts, &WithStmt{
		Keyword:    r.kw(token.KW_WITH),
		OpenParen:  r.kw(token.LPAREN),
		Object:     r.ident("env"),
		CloseParen: r.kw(token.RPAREN),
		Body:       r.block("x"),
	})

	r = &tokenRow{}
	stmts = append(stmts, &ReturnStmt{
		Keyword: r.kw(token.KW_RETURN),
		Value:   r.ident("x"),
		Semi:    r.semi(),
	})

	r = &tokenRow{}
	label := r.ident("outer")
	stmts = append(stmts, &LabeledStmt{
		Label: label,
		Colon: r.kw(token.COLON),
		Body:  r.block("x"),
	})

	r = &tokenRow{}
	stmts = append(stmts, &BreakStmt{
		Keyword: r.kw(token.KW_BREAK),
		Label:   r.ident("outer"),
		Semi:    r.semi(),
	})

	r = &tokenRow{}
	stmts = append(stmts, &ContinueStmt{
		Keyword: r.kw(token.KW_CONTINUE),
		Label:   r.ident("outer"),
		Semi:    r.semi(),
	})

	r = &tokenRow{}
	ifStmt := &IfStmt{
		Keyword:    r.kw(token.KW_IF),
		OpenParen:  r.kw(token.LPAREN),
		Test:       r.ident("cond"),
		CloseParen: r.kw(token.RPAREN),
		Consequent: r.exprStmt("a"),
	}
	ifStmt.Alternate = &ElseClause{Keyword: r.kw(token.KW_ELSE), Body: r.exprStmt("b")}
	stmts = append(stmts, ifStmt)

	r = &tokenRow{}
	sw := &SwitchStmt{
		Keyword:      r.kw(token.KW_SWITCH),
		OpenParen:    r.kw(token.LPAREN),
		Discriminant: r.ident("x"),
		CloseParen:   r.kw(token.RPAREN),
		OpenBrace:    r.kw(token.LBRACE),
	}
	caseKw := r.kw(token.KW_CASE)
	caseTest := r.num("1")
	caseColon := r.kw(token.COLON)
	caseBody := &BreakStmt{Keyword: r.kw(token.KW_BREAK), Semi: r.semi()}
	defaultKw := r.kw(token.KW_DEFAULT)
	defaultColon := r.kw(token.COLON)
	sw.Cases = []SwitchCase{
		{Keyword: caseKw, Test: caseTest, Colon: caseColon, Consequent: []ProgramPart{caseBody}},
		{Keyword: defaultKw, Colon: defaultColon},
	}
	sw.CloseBrace = r.kw(token.RBRACE)
	stmts = append(stmts, sw)

	r = &tokenRow{}
	stmts = append(stmts, &ThrowStmt{
		Keyword: r.kw(token.KW_THROW),
		Value:   r.ident("err"),
		Semi:    r.semi(),
	})

	r = &tokenRow{}
	try := &TryStmt{Keyword: r.kw(token.KW_TRY), Block: r.block("a")}
	catchKw := r.kw(token.KW_CATCH)
	open := r.kw(token.LPAREN)
	param := &IdentPat{Ident: r.ident("e")}
	try.Handler = &CatchClause{
		Keyword: catchKw,
		Param:   &CatchParam{OpenParen: open, Pat: param, CloseParen: r.kw(token.RPAREN)},
		Body:    r.block("b"),
	}
	try.Finalizer = &FinallyClause{Keyword: r.kw(token.KW_FINALLY), Body: r.block("c")}
	stmts = append(stmts, try)

	r = &tokenRow{}
	stmts = append(stmts, &WhileStmt{
		Keyword:    r.kw(token.KW_WHILE),
		OpenParen:  r.kw(token.LPAREN),
		Test:       r.ident("cond"),
		CloseParen: r.kw(token.RPAREN),
		Body:       r.block("x"),
	})

	r = &tokenRow{}
	stmts = append(stmts, &DoWhileStmt{
		Do:         r.kw(token.KW_DO),
		Body:       r.block("x"),
		While:      r.kw(token.KW_WHILE),
		OpenParen:  r.kw(token.LPAREN),
		Test:       r.ident("cond"),
		CloseParen: r.kw(token.RPAREN),
		Semi:       r.semi(),
	})

	r = &tokenRow{}
	forStmt := &ForStmt{
		Keyword:   r.kw(token.KW_FOR),
		OpenParen: r.kw(token.LPAREN),
		Init:      &LoopInitDecl{Decls: r.varDecls("i", "0")},
		Semi1:     *r.semi(),
	}
	forStmt.Test = &BinaryExpr{Left: r.ident("i"), Op: r.kw(token.LT), Right: r.num("10")}
	forStmt.Semi2 = *r.semi()
	forStmt.Update = &BinaryExpr{Left: r.ident("i"), Op: r.kw(token.ASSIGN), Right: r.num("1")}
	forStmt.CloseParen = r.kw(token.RPAREN)
	forStmt.Body = r.exprStmt("x")
	stmts = append(stmts, forStmt)

	r = &tokenRow{}
	forIn := &ForInStmt{
		Keyword:   r.kw(token.KW_FOR),
		OpenParen: r.kw(token.LPAREN),
	}
	kindKw := r.kw(token.KW_VAR)
	forIn.Left = &LoopLeftDecl{Keyword: kindKw, Decl: &Declarator{Id: &IdentPat{Ident: r.ident("k")}}}
	forIn.In = r.kw(token.KW_IN)
	forIn.Right = r.ident("obj")
	forIn.CloseParen = r.kw(token.RPAREN)
	forIn.Body = r.block("x")
	stmts = append(stmts, forIn)

	r = &tokenRow{}
	forOf := &ForOfStmt{
		Keyword:   r.kw(token.KW_FOR),
		OpenParen: r.kw(token.LPAREN),
	}
	forOf.Left = &LoopLeftPat{Pat: &IdentPat{Ident: r.ident("v")}}
	forOf.Of = r.kw(token.KW_OF)
	forOf.Right = r.ident("items")
	forOf.CloseParen = r.kw(token.RPAREN)
	forOf.Body = r.block("x")
	stmts = append(stmts, forOf)

	r = &tokenRow{}
	decls := r.varDecls("a", "1")
	comma := r.kw(token.COMMA)
	decls.Decls[0].Comma = &comma
	decls.Decls = append(decls.Decls, DeclaratorEntry{Item: r.declarator("b", "2")})
	stmts = append(stmts, &VarStmt{Decls: decls, Semi: r.semi()})

	return stmts
}
