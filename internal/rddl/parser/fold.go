// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package parser

import (
	"math"

	"github.com/samber/oops"

	"github.com/holocore/rddl/internal/rddl/ast"
)

// fold.go reduces the concrete grammar (grammar.go) to the unified
// ast.Expression tagged union and the semantic model types, turning each
// production's parse tree into the corresponding AST node.

func foldExpr(e *expr) (*ast.Expression, error) {
	switch {
	case e.If != nil:
		return foldIfExpr(e.If)
	case e.Quant != nil:
		return foldQuantifierExpr(e.Quant)
	case e.Agg != nil:
		return foldAggregationExpr(e.Agg)
	default:
		return foldEquivChain(e.Equiv)
	}
}

func foldIfExpr(n *ifExpr) (*ast.Expression, error) {
	cond, err := foldExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	then, err := foldExpr(n.Then)
	if err != nil {
		return nil, err
	}
	els, err := foldExpr(n.Else)
	if err != nil {
		return nil, err
	}
	return ast.If(cond, then, els, 0), nil
}

func foldTypedVars(vars []*typedVar) []ast.TypedVar {
	out := make([]ast.TypedVar, len(vars))
	for i, v := range vars {
		out[i] = ast.TypedVar{Var: v.Var, Type: v.Type}
	}
	return out
}

func foldQuantifierExpr(n *quantifierExpr) (*ast.Expression, error) {
	body, err := foldExpr(n.Body)
	if err != nil {
		return nil, err
	}
	return ast.Quantifier(n.Keyword, foldTypedVars(n.Vars), body, 0), nil
}

func foldAggregationExpr(n *aggregationExpr) (*ast.Expression, error) {
	body, err := foldExpr(n.Body)
	if err != nil {
		return nil, err
	}
	return ast.Aggregation(n.Op, foldTypedVars(n.Vars), body, 0), nil
}

func foldEquivChain(n *equivChain) (*ast.Expression, error) {
	lhs, err := foldImplyChain(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Rest == nil {
		return lhs, nil
	}
	rhs, err := foldImplyChain(n.Rest)
	if err != nil {
		return nil, err
	}
	return ast.Binary(ast.OpEquiv, lhs, rhs, 0), nil
}

func foldImplyChain(n *implyChain) (*ast.Expression, error) {
	lhs, err := foldOrChain(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Rest == nil {
		return lhs, nil
	}
	rhs, err := foldOrChain(n.Rest)
	if err != nil {
		return nil, err
	}
	return ast.Binary(ast.OpImply, lhs, rhs, 0), nil
}

func foldOrChain(n *orChain) (*ast.Expression, error) {
	lhs, err := foldAndChain(n.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range n.Rest {
		rhs, err := foldAndChain(r)
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary(ast.OpOr, lhs, rhs, 0)
	}
	return lhs, nil
}

func foldAndChain(n *andChain) (*ast.Expression, error) {
	lhs, err := foldRelChain(n.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range n.Rest {
		rhs, err := foldRelChain(r.Operand)
		if err != nil {
			return nil, err
		}
		lhs = ast.Binary(ast.OpAnd, lhs, rhs, 0)
	}
	return lhs, nil
}

func foldRelChain(n *relChain) (*ast.Expression, error) {
	lhs, err := foldSumChain(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Rest == nil {
		return lhs, nil
	}
	rhs, err := foldSumChain(n.Rest.Operand)
	if err != nil {
		return nil, err
	}
	return ast.Binary(relOp(n.Rest.Op), lhs, rhs, 0), nil
}

func relOp(op string) ast.Op {
	switch op {
	case "==":
		return ast.OpEq
	case "~=":
		return ast.OpNeq
	case "<=":
		return ast.OpLe
	case "<":
		return ast.OpLt
	case ">=":
		return ast.OpGe
	default:
		return ast.OpGt
	}
}

func foldSumChain(n *sumChain) (*ast.Expression, error) {
	lhs, err := foldTermChain(n.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range n.Rest {
		rhs, err := foldTermChain(r.Operand)
		if err != nil {
			return nil, err
		}
		op := ast.OpAdd
		if r.Op == "-" {
			op = ast.OpSub
		}
		lhs = ast.Binary(op, lhs, rhs, 0)
	}
	return lhs, nil
}

func foldTermChain(n *termChain) (*ast.Expression, error) {
	lhs, err := foldUnary(n.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range n.Rest {
		rhs, err := foldUnary(r.Operand)
		if err != nil {
			return nil, err
		}
		op := ast.OpMul
		if r.Op == "/" {
			op = ast.OpDiv
		}
		lhs = ast.Binary(op, lhs, rhs, 0)
	}
	return lhs, nil
}

func foldUnary(n *unary) (*ast.Expression, error) {
	if n.Atom != nil {
		return foldPrimary(n.Atom)
	}
	operand, err := foldUnary(n.Operand)
	if err != nil {
		return nil, err
	}
	op := ast.OpNeg
	switch n.Op {
	case "+":
		op = ast.OpPos
	case "~":
		op = ast.OpNot
	}
	return ast.Unary(op, operand, 0), nil
}

func foldPrimary(n *primary) (*ast.Expression, error) {
	switch {
	case n.Group != nil:
		return foldGroupExpr(n.Group)
	case n.Function != nil:
		return foldFunctionExpr(n.Function)
	case n.Switch != nil:
		return foldSwitchExpr(n.Switch)
	case n.Discrete != nil:
		return foldDiscreteExpr(n.Discrete)
	case n.Dirichlet != nil:
		return foldDirichletExpr(n.Dirichlet)
	case n.RandomVar != nil:
		return foldRandomVarExpr(n.RandomVar)
	case n.Double != nil:
		return ast.Float(*n.Double, 0), nil
	case n.Int != nil:
		return ast.Int(*n.Int, 0), nil
	case n.Bool != nil:
		return ast.Bool(*n.Bool, 0), nil
	case n.PVar != nil:
		return foldPvarExpr(n.PVar)
	default:
		return nil, oops.Code("syntax_error").Errorf("empty primary expression")
	}
}

func foldGroupExpr(n *groupExpr) (*ast.Expression, error) {
	if n.Paren != nil {
		return foldExpr(n.Paren)
	}
	return foldExpr(n.Bracket)
}

func foldFunctionExpr(n *functionExpr) (*ast.Expression, error) {
	args := make([]*ast.Expression, len(n.Args))
	for i, a := range n.Args {
		folded, err := foldExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = folded
	}
	return ast.Func(n.Name, args, 0), nil
}

func foldSwitchExpr(n *switchExpr) (*ast.Expression, error) {
	scrutinee, err := foldExpr(n.Scrutinee)
	if err != nil {
		return nil, err
	}
	cases := make([]ast.CaseClause, len(n.Cases))
	for i, c := range n.Cases {
		body, err := foldExpr(c.Expr)
		if err != nil {
			return nil, err
		}
		if c.Default {
			cases[i] = ast.CaseClause{IsOther: true, Expr: body}
			continue
		}
		label, err := foldTerm(c.Label)
		if err != nil {
			return nil, err
		}
		cases[i] = ast.CaseClause{Label: label, Expr: body}
	}
	return ast.Switch(scrutinee, cases, 0), nil
}

func foldDiscreteExpr(n *discreteExpr) (*ast.Expression, error) {
	lconsts := make([]ast.LConst, len(n.Clauses))
	for i, c := range n.Clauses {
		body, err := foldExpr(c.Expr)
		if err != nil {
			return nil, err
		}
		lconsts[i] = ast.LConst{Label: c.Label, Expr: body}
	}
	enumArg := ast.PVar(n.EnumArg, 0)
	return ast.DiscreteRandomVar(enumArg, lconsts, 0), nil
}

func foldDirichletExpr(n *dirichletExpr) (*ast.Expression, error) {
	prob, err := foldExpr(n.Prob)
	if err != nil {
		return nil, err
	}
	enumArg := ast.PVar(n.EnumArg, 0)
	return ast.DirichletRandomVar(enumArg, prob, 0), nil
}

func foldRandomVarExpr(n *randomVarExpr) (*ast.Expression, error) {
	switch {
	case n.One != nil:
		arg, err := foldExpr(n.One.Arg)
		if err != nil {
			return nil, err
		}
		return ast.RandomVar(n.One.Dist, []*ast.Expression{arg}, 0), nil
	case n.Two != nil:
		arg1, err := foldExpr(n.Two.Arg1)
		if err != nil {
			return nil, err
		}
		arg2, err := foldExpr(n.Two.Arg2)
		if err != nil {
			return nil, err
		}
		return ast.RandomVar(n.Two.Dist, []*ast.Expression{arg1, arg2}, 0), nil
	default:
		return nil, oops.Code("build_error").Errorf("empty random-variable expression")
	}
}

func foldPvarExpr(n *pvarExpr) (*ast.Expression, error) {
	if len(n.Params) == 0 {
		return ast.PVar(n.Name, 0), nil
	}
	params := make([]ast.Term, len(n.Params))
	for i := range n.Params {
		t, err := foldTerm(&n.Params[i])
		if err != nil {
			return nil, err
		}
		params[i] = *t
	}
	return ast.PVarWithParams(n.Name, params, 0), nil
}

func foldTerm(n *term) (*ast.Term, error) {
	switch {
	case n.Var != nil:
		return &ast.Term{Var: *n.Var}, nil
	case n.EnumVal != nil:
		return &ast.Term{EnumVal: *n.EnumVal}, nil
	case n.Nested != nil:
		nested, err := foldPvarExpr(n.Nested)
		if err != nil {
			return nil, err
		}
		return &ast.Term{NestedPVar: nested}, nil
	default:
		return nil, oops.Code("syntax_error").Errorf("empty term")
	}
}

func foldRangeConst(n *rangeConst) (*ast.Expression, error) {
	switch {
	case n.Bool != nil:
		return ast.Bool(*n.Bool, 0), nil
	case n.PosInf:
		return ast.Float(math.Inf(1), 0), nil
	case n.NegInf:
		return ast.Float(math.Inf(-1), 0), nil
	case n.Double != nil:
		v := *n.Double
		if n.Negative {
			v = -v
		}
		return ast.Float(v, 0), nil
	case n.Int != nil:
		v := *n.Int
		if n.Negative {
			v = -v
		}
		return ast.Int(v, 0), nil
	case n.Ident != nil:
		return &ast.Expression{Kind: ast.ExprPVar, Name: *n.Ident}, nil
	default:
		return nil, oops.Code("syntax_error").Errorf("empty range constant")
	}
}
