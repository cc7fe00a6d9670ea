// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package ast

import (
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// FluentType classifies a PVariable by where its value comes from.
type FluentType int

const (
	NonFluent FluentType = iota
	StateFluent
	ActionFluent
	IntermFluent
)

func (f FluentType) String() string {
	switch f {
	case NonFluent:
		return "non-fluent"
	case StateFluent:
		return "state-fluent"
	case ActionFluent:
		return "action-fluent"
	case IntermFluent:
		return "interm-fluent"
	default:
		return "unknown-fluent"
	}
}

// PVariable is a declared parameterized variable: its name, what kind of
// fluent it is, what its values range over, its parameter types (if any),
// and either a default value (non/state/action-fluent) or a level
// (interm-fluent) — never both, per the declaration it was parsed from.
type PVariable struct {
	Name        string
	FluentType  FluentType
	Range       string // "bool", "int", "real", or an enum type name
	ParamTypes  []string
	Default     *Expression
	Level       *int64
}

// Arity is the number of declared parameters, 0 when ParamTypes is absent.
func (p *PVariable) Arity() int {
	return len(p.ParamTypes)
}

// String renders the canonical functor/arity form used as an index key
// throughout the semantic model.
func (p *PVariable) String() string {
	return p.Name + "/" + strconv.Itoa(p.Arity())
}

// Repr renders the full declared signature with its parameter types, e.g.
// "rlevel(res)" or "rain" for arity 0.
func (p *PVariable) Repr() string {
	if p.Arity() == 0 {
		return p.Name
	}
	return p.Name + "(" + strings.Join(p.ParamTypes, ",") + ")"
}

func (p *PVariable) IsNonFluent() bool      { return p.FluentType == NonFluent }
func (p *PVariable) IsStateFluent() bool    { return p.FluentType == StateFluent }
func (p *PVariable) IsActionFluent() bool   { return p.FluentType == ActionFluent }
func (p *PVariable) IsIntermFluent() bool   { return p.FluentType == IntermFluent }

// Validate enforces the declaration-shape invariant: interm-fluents carry a
// Level and never a Default; every other fluent type carries a Default and
// never a Level.
func (p *PVariable) Validate() error {
	switch {
	case p.IsIntermFluent() && p.Level == nil:
		return oops.Code("build_error").With("pvariable", p.Repr()).
			Errorf("interm-fluent %s is missing a level", p.Repr())
	case p.IsIntermFluent() && p.Default != nil:
		return oops.Code("build_error").With("pvariable", p.Repr()).
			Errorf("interm-fluent %s must not declare a default", p.Repr())
	case !p.IsIntermFluent() && p.Level != nil:
		return oops.Code("build_error").With("pvariable", p.Repr()).
			Errorf("%s %s must not declare a level", p.FluentType, p.Repr())
	case !p.IsIntermFluent() && p.Default == nil:
		return oops.Code("build_error").With("pvariable", p.Repr()).
			Errorf("%s %s is missing a default", p.FluentType, p.Repr())
	}
	return nil
}
