// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package lexer

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Definition is the participle/v2 lexer.Definition the grammar package
// builds its Parser on top of. It shares rule order and pattern text with
// the hand-rolled Tokenize scanner (rules.go) but, unlike Tokenize, fails
// fast on an unrecognized character rather than recovering from one — the
// grammar has no use for a token stream with gaps in it.
var Definition = buildDefinition()

func buildDefinition() lexer.Definition {
	simple := make([]lexer.SimpleRule, 0, len(rules))
	for _, r := range rules {
		simple = append(simple, lexer.SimpleRule{Name: r.name, Pattern: r.pattern})
	}
	return lexer.MustSimple(simple)
}
