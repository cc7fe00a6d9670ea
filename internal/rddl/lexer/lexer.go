// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/oops"

	"github.com/holocore/rddl/internal/rddl/token"
)

// IllegalCharacterError is recorded for each character Tokenize could not
// match against any rule. The message text matches the lexer's required
// diagnostic exactly: "Illegal character: <c> at line <n>".
type IllegalCharacterError struct {
	Char rune
	Line int
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("Illegal character: %c at line %d", e.Char, e.Line)
}

// Tokenize scans source into a Token sequence, skipping over any character
// that matches no rule and recording it as an IllegalCharacterError rather
// than aborting. This is the "lexing continues" half of the lexer's
// contract (spec §4.1, §7) — the grammar parser instead uses the
// fail-fast Definition, since a gappy token stream is of no use to it.
//
// Comment and Whitespace lexemes are recognized (so they don't trip the
// illegal-character path and so line numbers advance across them) but are
// elided from the returned slice. A trailing EOF token is always appended.
func Tokenize(source string) ([]token.Token, []error) {
	var (
		tokens []token.Token
		errs   []error
		line   = 1
		rest   = source
	)

	for len(rest) > 0 {
		matched := false
		for _, c := range compiled {
			loc := c.re.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}
			text := rest[:loc[1]]
			if !c.elide {
				kind := c.kind
				if kind == token.Ident {
					kind = token.LookupIdent(text)
				}
				tokens = append(tokens, token.Token{Kind: kind, Text: text, Line: line})
			}
			line += strings.Count(text, "\n")
			rest = rest[loc[1]:]
			matched = true
			break
		}
		if matched {
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		errs = append(errs, oops.Code("illegal_character").
			With("line", line).
			Wrap(&IllegalCharacterError{Char: r, Line: line}))
		rest = rest[size:]
	}

	tokens = append(tokens, token.Token{Kind: token.EOF, Line: line})
	return tokens, errs
}
