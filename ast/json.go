package ast

// NodeToMap converts an allocated node to a map suitable for JSON
// serialization. This produces a tagged-union structure: every node has a
// "kind" field. Optional children are omitted when absent.
func NodeToMap(node interface{}) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return m("Program", "parts", partSlice(n.Parts))

	// ---- Statements ----
	case *ExprStmt:
		return m("ExprStmt", "expr", NodeToMap(n.Expr))
	case *BlockStmt:
		return m("BlockStmt", "parts", partSlice(n.Parts))
	case *EmptyStmt:
		return m("EmptyStmt")
	case *DebuggerStmt:
		return m("DebuggerStmt")
	case *WithStmt:
		return m("WithStmt", "object", NodeToMap(n.Object), "body", NodeToMap(n.Body))
	case *ReturnStmt:
		result := m("ReturnStmt")
		if n.Value != nil {
			result["value"] = NodeToMap(n.Value)
		}
		return result
	case *LabeledStmt:
		return m("LabeledStmt", "label", NodeToMap(n.Label), "body", NodeToMap(n.Body))
	case *BreakStmt:
		result := m("BreakStmt")
		if n.Label != nil {
			result["label"] = NodeToMap(n.Label)
		}
		return result
	case *ContinueStmt:
		result := m("ContinueStmt")
		if n.Label != nil {
			result["label"] = NodeToMap(n.Label)
		}
		return result
	case *IfStmt:
		result := m("IfStmt",
			"test", NodeToMap(n.Test),
			"consequent", NodeToMap(n.Consequent))
		if n.Alternate != nil {
			result["alternate"] = NodeToMap(n.Alternate)
		}
		return result
	case *SwitchStmt:
		cases := make([]interface{}, len(n.Cases))
		for i, c := range n.Cases {
			entry := m("SwitchCase", "consequent", partSlice(c.Consequent))
			if c.Test != nil {
				entry["test"] = NodeToMap(c.Test)
			}
			cases[i] = entry
		}
		return m("SwitchStmt", "discriminant", NodeToMap(n.Discriminant), "cases", cases)
	case *ThrowStmt:
		return m("ThrowStmt", "value", NodeToMap(n.Value))
	case *TryStmt:
		result := m("TryStmt", "block", NodeToMap(n.Block))
		if n.Handler != nil {
			handler := m("CatchClause", "body", NodeToMap(n.Handler.Body))
			if n.Handler.Param != nil {
				handler["param"] = NodeToMap(n.Handler.Param)
			}
			result["handler"] = handler
		}
		if n.Finalizer != nil {
			result["finalizer"] = NodeToMap(n.Finalizer)
		}
		return result
	case *WhileStmt:
		return m("WhileStmt", "test", NodeToMap(n.Test), "body", NodeToMap(n.Body))
	case *DoWhileStmt:
		return m("DoWhileStmt", "body", NodeToMap(n.Body), "test", NodeToMap(n.Test))
	case *ForStmt:
		result := m("ForStmt", "body", NodeToMap(n.Body))
		if n.Init != nil {
			result["init"] = NodeToMap(n.Init)
		}
		if n.Test != nil {
			result["test"] = NodeToMap(n.Test)
		}
		if n.Update != nil {
			result["update"] = NodeToMap(n.Update)
		}
		return result
	case *ForInStmt:
		return m("ForInStmt",
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right),
			"body", NodeToMap(n.Body))
	case *ForOfStmt:
		return m("ForOfStmt",
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right),
			"body", NodeToMap(n.Body),
			"await", n.IsAwait)
	case *VarStmt:
		return m("VarStmt", "decls", declSlice(n.Decls))

	// ---- Declarations ----
	case *VarDecl:
		return m("VarDecl", "varKind", n.Kind.String(), "decls", declSlice(n.Decls))

	// ---- Loop headers ----
	case *LoopInitDecl:
		return m("LoopInitDecl", "varKind", n.Kind.String(), "decls", declSlice(n.Decls))
	case *LoopInitExpr:
		return m("LoopInitExpr", "expr", NodeToMap(n.Expr))
	case *LoopLeftDecl:
		return m("LoopLeftDecl", "varKind", n.Kind.String(), "decl", declToMap(n.Decl))
	case *LoopLeftExpr:
		return m("LoopLeftExpr", "expr", NodeToMap(n.Expr))
	case *LoopLeftPat:
		return m("LoopLeftPat", "pat", NodeToMap(n.Pat))

	// ---- Expressions and patterns ----
	case *Ident:
		return m("Ident", "name", n.Name)
	case *Lit:
		return m("Lit", "raw", n.Raw)
	case *BinaryExpr:
		return m("BinaryExpr",
			"op", n.Op,
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *IdentPat:
		return m("IdentPat", "ident", NodeToMap(n.Ident))

	// ---- Role ----
	case *Role:
		result := m("Role", "props", propSlice(n.Props))
		if n.Id != nil {
			result["id"] = NodeToMap(n.Id)
		}
		return result

	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// ---- helpers ----

// m builds a map with kind and extra key-value pairs.
func m(kind string, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func partSlice(parts []ProgramPart) []interface{} {
	result := make([]interface{}, len(parts))
	for i, p := range parts {
		result[i] = NodeToMap(p)
	}
	return result
}

func declSlice(decls []Declarator) []interface{} {
	result := make([]interface{}, len(decls))
	for i, d := range decls {
		result[i] = declToMap(d)
	}
	return result
}

func declToMap(d Declarator) map[string]interface{} {
	result := m("Declarator", "id", NodeToMap(d.Id))
	if d.Init != nil {
		result["init"] = NodeToMap(d.Init)
	}
	return result
}

func propSlice(props []Prop) []interface{} {
	result := make([]interface{}, len(props))
	for i, p := range props {
		result[i] = m("Prop", "key", NodeToMap(p.Key), "value", NodeToMap(p.Value))
	}
	return result
}
