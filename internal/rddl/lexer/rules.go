// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

// Package lexer turns RDDL source text into a token.Token sequence and
// builds the participle/v2 lexer.Definition the grammar parses against.
//
// The same rule table drives two independent consumers: a hand-rolled
// scanning loop (Tokenize, in lexer.go) that implements the lexer's required
// "skip the bad character, keep lexing" recovery, and a participle
// lexer.Definition (Definition, in definition.go) that the parser builds
// its grammar on top of. Keeping one rule table for both means the
// parser and the standalone Lexer can never drift on what a token is.
package lexer

import (
	"regexp"

	"github.com/holocore/rddl/internal/rddl/token"
)

// rule is one lexical rule: a name (used by participle to tag the token),
// the kind it maps to (ignored for "Ident", which is reclassified against
// the reserved-word table), and the regex that recognizes it. Multi-
// character operators are listed before any single-character operator
// they share a prefix with, per spec §4.1's "regexes must be tried in
// longest-first order".
type rule struct {
	name    string
	kind    token.Kind
	pattern string
	elide   bool
}

var rules = []rule{
	{name: "Comment", pattern: `//[^\n]*`, elide: true},
	{name: "Whitespace", pattern: `[ \t\r\n]+`, elide: true},
	{name: "Double", kind: token.Double, pattern: `[0-9]*\.[0-9]+`},
	{name: "Integer", kind: token.Integer, pattern: `[0-9]+`},
	{name: "Variable", kind: token.Var, pattern: `\?[A-Za-z0-9_\-]*[A-Za-z0-9]`},
	{name: "EnumVal", kind: token.EnumVal, pattern: `@[A-Za-z0-9_\-]*[A-Za-z0-9]`},
	{name: "Ident", kind: token.Ident, pattern: `[A-Za-z]([A-Za-z0-9_\-]*[A-Za-z0-9])?'?`},
	// Multi-character operators before their single-character prefixes.
	{name: "Equiv", kind: token.Equiv, pattern: `<=>`},
	{name: "Implies", kind: token.Implies, pattern: `=>`},
	{name: "Le", kind: token.Le, pattern: `<=`},
	{name: "Ge", kind: token.Ge, pattern: `>=`},
	{name: "Eq", kind: token.Eq, pattern: `==`},
	{name: "NotEq", kind: token.NotEq, pattern: `~=`},
	{name: "Lt", kind: token.Lt, pattern: `<`},
	{name: "Gt", kind: token.Gt, pattern: `>`},
	{name: "Assign", kind: token.Assign, pattern: `=`},
	{name: "Tilde", kind: token.Tilde, pattern: `~`},
	{name: "Caret", kind: token.Caret, pattern: `\^`},
	{name: "Pipe", kind: token.Pipe, pattern: `\|`},
	{name: "Plus", kind: token.Plus, pattern: `\+`},
	{name: "Star", kind: token.Star, pattern: `\*`},
	{name: "LParen", kind: token.LParen, pattern: `\(`},
	{name: "RParen", kind: token.RParen, pattern: `\)`},
	{name: "LBrace", kind: token.LBrace, pattern: `\{`},
	{name: "RBrace", kind: token.RBrace, pattern: `\}`},
	{name: "Dot", kind: token.Dot, pattern: `\.`},
	{name: "Comma", kind: token.Comma, pattern: `,`},
	{name: "Underscore", kind: token.Underscore, pattern: `_`},
	{name: "LBracket", kind: token.LBracket, pattern: `\[`},
	{name: "RBracket", kind: token.RBracket, pattern: `\]`},
	{name: "Slash", kind: token.Slash, pattern: `/`},
	{name: "Minus", kind: token.Minus, pattern: `-`},
	{name: "Colon", kind: token.Colon, pattern: `:`},
	{name: "Semi", kind: token.Semi, pattern: `;`},
	{name: "Dollar", kind: token.Dollar, pattern: `\$`},
	{name: "Question", kind: token.Question, pattern: `\?`},
	{name: "Amp", kind: token.Amp, pattern: `&`},
}

// compiled holds the same rules pre-anchored for the hand-rolled scanner.
var compiled = func() []struct {
	rule
	re *regexp.Regexp
} {
	out := make([]struct {
		rule
		re *regexp.Regexp
	}, len(rules))
	for i, r := range rules {
		out[i].rule = r
		out[i].re = regexp.MustCompile(`^(?:` + r.pattern + `)`)
	}
	return out
}()
