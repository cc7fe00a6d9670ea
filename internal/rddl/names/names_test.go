// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocore/rddl/internal/rddl/errutil"
	"github.com/holocore/rddl/internal/rddl/names"
)

func TestCurrentOf(t *testing.T) {
	got, err := names.CurrentOf("rlevel'/1")
	require.NoError(t, err)
	assert.Equal(t, "rlevel/1", got)
}

func TestCurrentOf_RejectsUnprimedFunctor(t *testing.T) {
	_, err := names.CurrentOf("rlevel/1")
	errutil.AssertErrorCode(t, err, errutil.CodeBadCanonicalName)
	assert.Contains(t, err.Error(), "not a primed state-fluent")
}

func TestNextOf(t *testing.T) {
	got, err := names.NextOf("rlevel/1")
	require.NoError(t, err)
	assert.Equal(t, "rlevel'/1", got)
}

func TestCurrentOfNextOf_Inverses(t *testing.T) {
	next, err := names.NextOf("outflow/2")
	require.NoError(t, err)
	current, err := names.CurrentOf(next)
	require.NoError(t, err)
	assert.Equal(t, "outflow/2", current)
}

func TestArityOf(t *testing.T) {
	n, err := names.ArityOf("rlevel/3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSplit_RequiresSeparator(t *testing.T) {
	_, err := names.CurrentOf("rlevel")
	errutil.AssertErrorCode(t, err, errutil.CodeBadCanonicalName)
}
