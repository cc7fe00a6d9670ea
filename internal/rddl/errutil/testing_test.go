// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package errutil_test

import (
	"testing"

	"github.com/samber/oops"

	"github.com/holocore/rddl/internal/rddl/errutil"
)

func TestAssertErrorCode_MatchingCode(t *testing.T) {
	err := oops.Code(errutil.CodeBuildError).Errorf("test error")
	// Should not fail
	errutil.AssertErrorCode(t, err, errutil.CodeBuildError)
}

func TestAssertErrorContext_MatchingKeyValue(t *testing.T) {
	err := oops.With("line", 12).Errorf("test error")
	// Should not fail
	errutil.AssertErrorContext(t, err, "line", 12)
}

func TestAssertBuildError_MatchesBuildErrorCode(t *testing.T) {
	err := oops.Code(errutil.CodeBuildError).Errorf("missing required section")
	// Should not fail
	errutil.AssertBuildError(t, err)
}

func TestAssertSyntaxError_MatchesSyntaxErrorCode(t *testing.T) {
	err := oops.Code(errutil.CodeSyntaxError).Errorf("unexpected token")
	// Should not fail
	errutil.AssertSyntaxError(t, err)
}
