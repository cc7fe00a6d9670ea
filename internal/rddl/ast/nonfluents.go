// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package ast

// ObjectDecl is one `objects { type_name : {o1, o2, ...}; }` entry.
type ObjectDecl struct {
	TypeName string
	Objects  []string
}

// InitValue is the decoded right-hand side of a pvariable-instantiation
// clause: exactly one field is populated, matching the shape the clause
// was parsed from.
type InitValue struct {
	Bool    *bool
	Int     *int64
	Float   *float64
	Enum    *string // a bare identifier or enum-value label
}

// Initializer is one pvariable-instantiation clause: `f(a,b) = v;` and its
// five sibling shapes, normalized to a (functor, params?) head and a
// decoded value.
type Initializer struct {
	Functor string
	Params  []Term // nil for arity-0 references
	Value   InitValue
}

// NonFluents is a parsed `non-fluents { ... }` block: the domain it
// instantiates, the object population per declared object-kind type, and
// the non-fluent value initializers.
type NonFluents struct {
	Name          string
	Domain        string
	Objects       []ObjectDecl
	InitNonFluent []Initializer
}
