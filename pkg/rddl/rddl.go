// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

// Package rddl is the public surface for parsing RDDL (Relational Dynamic
// Influence Diagram Language) domain/instance/non-fluents descriptions
// into a typed Go model. It re-exports the semantic model from
// internal/rddl/ast and wraps internal/rddl/parser and internal/rddl/lexer
// behind a stable API.
package rddl

import (
	"io"

	"github.com/holocore/rddl/internal/rddl/ast"
	"github.com/holocore/rddl/internal/rddl/lexer"
	"github.com/holocore/rddl/internal/rddl/names"
	"github.com/holocore/rddl/internal/rddl/parser"
	"github.com/holocore/rddl/internal/rddl/token"
)

// Type aliases expose the semantic model without duplicating it.
type (
	RDDL        = ast.RDDL
	Domain      = ast.Domain
	NonFluents  = ast.NonFluents
	Instance    = ast.Instance
	PVariable   = ast.PVariable
	CPF         = ast.CPF
	Expression  = ast.Expression
	ExprKind    = ast.ExprKind
	TypedVar    = ast.TypedVar
	Term        = ast.Term
	CaseClause  = ast.CaseClause
	LConst      = ast.LConst
	ObjectDecl  = ast.ObjectDecl
	ObjectTable = ast.ObjectTable
	Initializer = ast.Initializer
	FluentType  = ast.FluentType
	Token       = token.Token
	TokenKind   = token.Kind
	Option      = parser.Option
)

// Re-exported fluent-type constants.
const (
	NonFluentKind  = ast.NonFluent
	StateFluent    = ast.StateFluent
	ActionFluent   = ast.ActionFluent
	IntermFluent   = ast.IntermFluent
)

// Parse reduces RDDL source text to a root RDDL value. Options configure
// the optional verbose trace; see WithVerbose and WithTraceWriter.
func Parse(source string, opts ...Option) (*RDDL, error) {
	return parser.Parse(source, opts...)
}

// WithVerbose causes Parse to write a marker after each top-level block
// is reduced.
func WithVerbose(v bool) Option { return parser.WithVerbose(v) }

// WithTraceWriter sets where Parse's verbose trace is written.
func WithTraceWriter(w io.Writer) Option {
	return parser.WithTraceWriter(w)
}

// Lex tokenizes RDDL source text, recovering from illegal characters by
// skipping them rather than aborting. It returns every error encountered,
// in source order, alongside whatever tokens were successfully lexed.
func Lex(source string) ([]Token, []error) {
	return lexer.Tokenize(source)
}

// CurrentOf returns the current-state name for a primed next-state name
// (e.g. "rlevel'/1" -> "rlevel/1").
func CurrentOf(next string) (string, error) { return names.CurrentOf(next) }

// NextOf returns the primed next-state name for a current-state name
// (e.g. "rlevel/1" -> "rlevel'/1").
func NextOf(current string) (string, error) { return names.NextOf(current) }
