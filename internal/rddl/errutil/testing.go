// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Error codes of the lexer, parser, semantic model and names packages:
// a grammar failure reports CodeSyntaxError, a post-parse semantic-model
// consistency failure reports CodeBuildError, a recovered lexer error
// reports CodeIllegalCharacter, and the names package's malformed-name
// checks report CodeBadCanonicalName. The token package's decode helpers
// ("token_kind", "token_decode") and the rddldump CLI ("io_error") use
// codes of their own that are not listed here.
const (
	CodeSyntaxError      = "syntax_error"
	CodeBuildError       = "build_error"
	CodeIllegalCharacter = "illegal_character"
	CodeBadCanonicalName = "bad_canonical_name"
)

// AssertErrorCode asserts that err is an oops error with the given code.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oopsErr.Code())
}

// AssertErrorContext asserts that err is an oops error with the given context key/value.
func AssertErrorContext(t *testing.T, err error, key string, value any) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	ctx := oopsErr.Context()
	assert.Contains(t, ctx, key)
	assert.Equal(t, value, ctx[key])
}

// AssertBuildError asserts err is a CodeBuildError failure, the code every
// semantic-model consistency check (PVariable.Validate, NewDomain,
// RDDL.Build) reports.
func AssertBuildError(t *testing.T, err error) {
	t.Helper()
	AssertErrorCode(t, err, CodeBuildError)
}

// AssertSyntaxError asserts err is a CodeSyntaxError failure, the code
// parser.Parse reports for a grammar failure.
func AssertSyntaxError(t *testing.T, err error) {
	t.Helper()
	AssertErrorCode(t, err, CodeSyntaxError)
}
