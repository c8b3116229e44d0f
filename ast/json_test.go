package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeToMapNil(t *testing.T) {
	assert.Nil(t, NodeToMap(nil))
}

func TestNodeToMapKindTag(t *testing.T) {
	cases := []struct {
		node interface{}
		want string
	}{
		{&Program{}, "Program"},
		{&ExprStmt{Expr: &Ident{Name: "x"}}, "ExprStmt"},
		{&EmptyStmt{}, "EmptyStmt"},
		{&DebuggerStmt{}, "DebuggerStmt"},
		{&Ident{Name: "x"}, "Ident"},
		{&Lit{Raw: "1"}, "Lit"},
		{&IdentPat{Ident: &Ident{Name: "x"}}, "IdentPat"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NodeToMap(tc.node)["kind"], "%T", tc.node)
	}
}

func TestNodeToMapOmitsAbsentChildren(t *testing.T) {
	ret := NodeToMap(&ReturnStmt{})
	assert.NotContains(t, ret, "value")

	brk := NodeToMap(&BreakStmt{})
	assert.NotContains(t, brk, "label")

	ifMap := NodeToMap(&IfStmt{
		Test:       &Ident{Name: "a"},
		Consequent: &EmptyStmt{},
	})
	assert.NotContains(t, ifMap, "alternate")

	forMap := NodeToMap(&ForStmt{Body: &EmptyStmt{}})
	assert.NotContains(t, forMap, "init")
	assert.NotContains(t, forMap, "test")
	assert.NotContains(t, forMap, "update")
}

func TestNodeToMapIncludesPresentChildren(t *testing.T) {
	ret := NodeToMap(&ReturnStmt{Value: &Ident{Name: "x"}})
	require.Contains(t, ret, "value")
	assert.Equal(t, "Ident", ret["value"].(map[string]interface{})["kind"])

	brk := NodeToMap(&BreakStmt{Label: &Ident{Name: "outer"}})
	require.Contains(t, brk, "label")
}

func TestNodeToMapVarDecl(t *testing.T) {
	d := &VarDecl{
		Kind: Let,
		Decls: []Declarator{
			{Id: &IdentPat{Ident: &Ident{Name: "a"}}, Init: &Lit{Raw: "1"}},
			{Id: &IdentPat{Ident: &Ident{Name: "b"}}},
		},
	}

	got := NodeToMap(d)
	assert.Equal(t, "VarDecl", got["kind"])
	assert.Equal(t, "let", got["varKind"])
	decls := got["decls"].([]interface{})
	require.Len(t, decls, 2)
	first := decls[0].(map[string]interface{})
	assert.Equal(t, "Declarator", first["kind"])
	assert.Contains(t, first, "init")
	second := decls[1].(map[string]interface{})
	assert.NotContains(t, second, "init")
}

func TestNodeToMapSwitch(t *testing.T) {
	s := &SwitchStmt{
		Discriminant: &Ident{Name: "x"},
		Cases: []SwitchCase{
			{Test: &Lit{Raw: "1"}, Consequent: []ProgramPart{&BreakStmt{}}},
			{},
		},
	}

	got := NodeToMap(s)
	cases := got["cases"].([]interface{})
	require.Len(t, cases, 2)
	first := cases[0].(map[string]interface{})
	assert.Equal(t, "SwitchCase", first["kind"])
	assert.Contains(t, first, "test")
	second := cases[1].(map[string]interface{})
	assert.NotContains(t, second, "test", "the default arm has no test")
}

func TestNodeToMapRole(t *testing.T) {
	role := &Role{
		Id: &Ident{Name: "name"},
		Props: []Prop{
			{Key: &Ident{Name: "a"}, Value: &Lit{Raw: "1"}},
		},
	}

	got := NodeToMap(role)
	assert.Equal(t, "Role", got["kind"])
	assert.Contains(t, got, "id")
	props := got["props"].([]interface{})
	require.Len(t, props, 1)
	assert.Equal(t, "Prop", props[0].(map[string]interface{})["kind"])

	role.Id = nil
	assert.NotContains(t, NodeToMap(role), "id")
}

func TestNodeToMapMarshals(t *testing.T) {
	p := &Program{Parts: []ProgramPart{
		&ExprStmt{Expr: &BinaryExpr{
			Left:  &Ident{Name: "a"},
			Op:    "+",
			Right: &Lit{Raw: "1"},
		}},
		&VarDecl{Kind: Var, Decls: []Declarator{
			{Id: &IdentPat{Ident: &Ident{Name: "x"}}},
		}},
	}}

	data, err := json.Marshal(NodeToMap(p))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"Program"`)
	assert.Contains(t, string(data), `"kind":"BinaryExpr"`)
}

func TestVarKindString(t *testing.T) {
	assert.Equal(t, "var", Var.String())
	assert.Equal(t, "let", Let.String())
	assert.Equal(t, "const", Const.String())
}
