// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package token

import (
	"strconv"

	"github.com/samber/oops"
)

// Token is a single lexical unit: a Kind tag, its literal text, and the
// source line it started on. Numeric and boolean literals keep their raw
// text here; DecodeInt/DecodeFloat/DecodeBool give the typed value on demand, since a Go
// struct field can't carry the Python lexer's dynamically-typed value.
type Token struct {
	Kind Kind
	Text string
	Line int
}

// String renders a Token as LexToken(KIND,"text",line), the form the
// rddldump tokens command prints.
func (t Token) String() string {
	return "LexToken(" + t.Kind.String() + "," + strconv.Quote(t.Text) + "," + strconv.Itoa(t.Line) + ")"
}

// DecodeInt decodes an Integer token's text to a signed integer. Called on
// a non-Integer token it returns a "token_kind" error; callers are expected
// to check Kind first.
func (t Token) DecodeInt() (int64, error) {
	if t.Kind != Integer {
		return 0, oops.Code("token_kind").Errorf("DecodeInt called on non-integer token %s", t.Kind)
	}
	v, err := strconv.ParseInt(t.Text, 10, 64)
	if err != nil {
		return 0, oops.Code("token_decode").With("text", t.Text).Wrap(err)
	}
	return v, nil
}

// DecodeFloat decodes a Double token's text to a float64.
func (t Token) DecodeFloat() (float64, error) {
	if t.Kind != Double {
		return 0, oops.Code("token_kind").Errorf("DecodeFloat called on non-double token %s", t.Kind)
	}
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, oops.Code("token_decode").With("text", t.Text).Wrap(err)
	}
	return v, nil
}

// DecodeBool decodes a True/False token to a bool. Booleans are decoded at
// parse time (spec §3), not at lex time, since the lexer only classifies
// "true"/"false" as reserved words.
func (t Token) DecodeBool() (bool, error) {
	switch t.Kind {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return false, oops.Code("token_kind").Errorf("DecodeBool called on non-boolean token %s", t.Kind)
	}
}
