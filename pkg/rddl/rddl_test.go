// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package rddl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocore/rddl/pkg/rddl"
)

func TestLex_SkipsIllegalCharacterAndReportsIt(t *testing.T) {
	toks, errs := rddl.Lex("rlevel # outflow")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Illegal character: # at line 1")
	assert.NotEmpty(t, toks)
}

func TestNextOf_CurrentOf_RoundTrip(t *testing.T) {
	next, err := rddl.NextOf("rlevel/1")
	require.NoError(t, err)
	assert.Equal(t, "rlevel'/1", next)

	current, err := rddl.CurrentOf(next)
	require.NoError(t, err)
	assert.Equal(t, "rlevel/1", current)
}

func TestParse_MarsRoverLikeDomain(t *testing.T) {
	source := `
domain mars_rover {
  types {
    rover : object;
  };
  pvariables {
    MOVE_VARIANCE(rover) : { non-fluent, real, default = 0.1 };
    xPos(rover) : { state-fluent, real, default = 0.0 };
    xMove(rover) : { action-fluent, real, default = 0.0 };
  };
  cpfs {
    xPos'(?d) = xPos(?d) + xMove(?d);
  };
  reward = 0.0;
};

non-fluents nf {
  domain = mars_rover;
  objects {
    rover : {d1};
  };
};

instance inst {
  domain = mars_rover;
  non-fluents = nf;
  init-state {
    xPos(d1) = 0.0;
  };
  max-nondef-actions = 1;
  horizon = 10;
  discount = 1.0;
};
`
	root, err := rddl.Parse(source)
	require.NoError(t, err)
	assert.Equal(t, "mars_rover", root.Domain.Name)
	assert.Contains(t, root.Domain.StateFluents(), "xPos/1")
	assert.Equal(t, int64(1), root.Instance.MaxNondefActions.Value)
}
