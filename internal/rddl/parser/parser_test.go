// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocore/rddl/internal/rddl/ast"
	"github.com/holocore/rddl/internal/rddl/errutil"
	"github.com/holocore/rddl/internal/rddl/parser"
)

const reservoirSource = `
domain reservoir {
  requirements = { concurrent, reward-deterministic };
  types {
    res : object;
  };
  pvariables {
    MAXCAP(res) : { non-fluent, real, default = 100.0 };
    rlevel(res) : { state-fluent, real, default = 50.0 };
    outflow(res) : { action-fluent, real, default = 0.0 };
  };
  cpfs {
    rlevel'(?r) = rlevel(?r) - outflow(?r);
  };
  reward = -1.0;
};

non-fluents nf1 {
  domain = reservoir;
  objects {
    res : {t1};
  };
};

instance inst1 {
  domain = reservoir;
  non-fluents = nf1;
  init-state {
    rlevel(t1) = 50.0;
  };
  max-nondef-actions = pos-inf;
  horizon = 40;
  discount = 1.0;
};
`

func TestParse_ReservoirEndToEnd(t *testing.T) {
	root, err := parser.Parse(reservoirSource)
	require.NoError(t, err)
	require.NotNil(t, root)

	assert.Equal(t, "reservoir", root.Domain.Name)
	assert.Equal(t, "nf1", root.NonFluents.Name)
	assert.Equal(t, "inst1", root.Instance.Name)

	state := root.Domain.StateFluents()
	assert.Contains(t, state, "rlevel/1")

	action := root.Domain.ActionFluents()
	assert.Contains(t, action, "outflow/1")

	nonFluent := root.Domain.NonFluents()
	assert.Contains(t, nonFluent, "MAXCAP/1")

	stateCPFs := root.Domain.StateCPFs()
	require.Len(t, stateCPFs, 1)
	assert.Equal(t, "rlevel'/1", stateCPFs[0].Name())

	table := root.ObjectTable["res"]
	require.NotNil(t, table)
	assert.Equal(t, []string{"t1"}, table.Objects)

	assert.True(t, root.Instance.MaxNondefActions.PosInf)
	assert.Equal(t, int64(40), root.Instance.Horizon.Steps)
	assert.InDelta(t, 1.0, root.Instance.Discount, 1e-9)
}

func TestParse_RewardIsUnaryMinusExpression(t *testing.T) {
	root, err := parser.Parse(reservoirSource)
	require.NoError(t, err)

	reward := root.Domain.Reward
	require.Equal(t, ast.ExprUnaryArith, reward.Kind)
	assert.Equal(t, ast.OpNeg, reward.Op)
	require.Len(t, reward.Children, 1)
	assert.Equal(t, 1.0, reward.Children[0].FloatValue)
}

func TestParse_CPFExpressionIsSubtractionOfPVars(t *testing.T) {
	root, err := parser.Parse(reservoirSource)
	require.NoError(t, err)

	cpf := root.Domain.CPFs.Defs[0]
	assert.Equal(t, "rlevel'/1", cpf.Name())

	expr := cpf.Expr
	require.Equal(t, ast.ExprArith, expr.Kind)
	assert.Equal(t, ast.OpSub, expr.Op)
	require.Len(t, expr.Children, 2)
	assert.Equal(t, "rlevel", expr.Children[0].Name)
	assert.Equal(t, "outflow", expr.Children[1].Name)
}

const reservoirInlineNonFluentsSource = `
domain reservoir {
  requirements = { concurrent, reward-deterministic };
  types {
    res : object;
  };
  pvariables {
    MAXCAP(res) : { non-fluent, real, default = 100.0 };
    rlevel(res) : { state-fluent, real, default = 50.0 };
    outflow(res) : { action-fluent, real, default = 0.0 };
  };
  cpfs {
    rlevel'(?r) = rlevel(?r) - outflow(?r);
  };
  reward = -1.0;
};

instance inst1 {
  domain = reservoir;
  non-fluents {
    MAXCAP(t1) = 200.0;
  };
  objects {
    res : {t1};
  };
  init-state {
    rlevel(t1) = 50.0;
  };
  max-nondef-actions = 1;
  horizon = 40;
  discount = 1.0;
};
`

func TestParse_InlineAnonymousNonFluentsBlock(t *testing.T) {
	root, err := parser.Parse(reservoirInlineNonFluentsSource)
	require.NoError(t, err)
	require.NotNil(t, root)

	assert.Equal(t, "anonymous", root.NonFluents.Name)
	require.Len(t, root.NonFluents.InitNonFluent, 1)
	assert.Equal(t, "MAXCAP", root.NonFluents.InitNonFluent[0].Functor)
	require.NotNil(t, root.NonFluents.InitNonFluent[0].Value.Float)
	assert.InDelta(t, 200.0, *root.NonFluents.InitNonFluent[0].Value.Float, 1e-9)

	table := root.ObjectTable["res"]
	require.NotNil(t, table)
	assert.Equal(t, []string{"t1"}, table.Objects)
}

func TestParse_MissingNonFluentsIsBuildError(t *testing.T) {
	const src = `
domain reservoir {
  requirements = { concurrent };
  types { res : object; };
  pvariables {
    rlevel(res) : { state-fluent, real, default = 50.0 };
    outflow(res) : { action-fluent, real, default = 0.0 };
  };
  cpfs { rlevel'(?r) = rlevel(?r) - outflow(?r); };
  reward = -1.0;
};

instance inst1 {
  domain = reservoir;
  non-fluents = nf1;
  objects { res : {t1}; };
  init-state { rlevel(t1) = 50.0; };
  max-nondef-actions = 1;
  horizon = 40;
  discount = 1.0;
};
`
	_, err := parser.Parse(src)
	errutil.AssertBuildError(t, err)
}

func TestParse_MissingBlockIsBuildError(t *testing.T) {
	_, err := parser.Parse(`domain x { pvariables {}; cpfs {}; reward = 0; };`)
	errutil.AssertBuildError(t, err)
}

func TestParse_SyntaxErrorOnMalformedInput(t *testing.T) {
	_, err := parser.Parse(`domain x { pvariables { a : ( } ; }; cpfs {}; reward = 0; };`)
	errutil.AssertSyntaxError(t, err)
}
