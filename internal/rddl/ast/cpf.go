// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package ast

import "strconv"

// CPF is one conditional probability (or deterministic) function
// definition: the pvar_expr naming the fluent it updates, and the
// expression computing its value.
type CPF struct {
	PVar *Expression // Kind == ExprPVar
	Expr *Expression
}

// Name is the canonical functor/arity form of the CPF's head, used as its
// index key in Domain's derived orderings.
func (c *CPF) Name() string {
	return c.PVar.Name + "/" + strconv.Itoa(len(c.PVar.Params))
}

// Functor is the CPF head's bare name, without arity.
func (c *CPF) Functor() string {
	return c.PVar.Name
}
