package ast

// Role is a role container reduced to its name and ordered properties.
type Role struct {
	Id    *Ident // nil for an anonymous role
	Props []Prop
}
