// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package parser

import (
	"fmt"
	"io"

	"github.com/samber/oops"

	"github.com/holocore/rddl/internal/rddl/ast"
)

// traceSection writes one "reduced <section>" marker to trace, if set. It is
// a no-op when trace is nil, so callers don't need to guard every call site.
func traceSection(trace io.Writer, section string) {
	if trace != nil {
		fmt.Fprintf(trace, "reduced %s\n", section)
	}
}

func foldTypeDef(n *typeDef) (ast.TypeDef, error) {
	if n.Object {
		return ast.TypeDef{Name: n.Name, IsObject: true}, nil
	}
	return ast.TypeDef{Name: n.Name, EnumLabels: n.Labels}, nil
}

func foldPVariableDef(n *pvariableDef) (*ast.PVariable, error) {
	p := &ast.PVariable{
		Name:       n.Name,
		Range:      n.Range,
		ParamTypes: n.ParamTypes,
	}
	switch n.Kind {
	case "non-fluent":
		p.FluentType = ast.NonFluent
	case "state-fluent":
		p.FluentType = ast.StateFluent
	case "action-fluent":
		p.FluentType = ast.ActionFluent
	case "interm-fluent", "derived-fluent", "observ-fluent":
		p.FluentType = ast.IntermFluent
	default:
		return nil, oops.Code("build_error").With("pvariable", n.Name).
			Errorf("unknown fluent kind %q", n.Kind)
	}
	if n.Level != nil {
		p.Level = n.Level
	}
	if n.Default != nil {
		def, err := foldRangeConst(n.Default)
		if err != nil {
			return nil, err
		}
		p.Default = def
	}
	return p, nil
}

func foldCPFDef(n *cpfDef) (*ast.CPF, error) {
	head, err := foldPvarExpr(n.Head)
	if err != nil {
		return nil, err
	}
	body, err := foldExpr(n.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.CPF{PVar: head, Expr: body}, nil
}

func foldExprListSection(n *exprListSection) ([]*ast.Expression, error) {
	out := make([]*ast.Expression, len(n.Exprs))
	for i, e := range n.Exprs {
		folded, err := foldExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = folded
	}
	return out, nil
}

func foldDomainBlock(n *domainBlock, trace io.Writer) (*ast.Domain, error) {
	traceSection(trace, "requirements")
	sections := map[string]any{}
	for _, s := range n.Sections {
		switch {
		case s.Types != nil:
			var defs []ast.TypeDef
			for _, td := range s.Types.Defs {
				folded, err := foldTypeDef(td)
				if err != nil {
					return nil, err
				}
				defs = append(defs, folded)
			}
			sections["types"] = defs
			traceSection(trace, "types")
		case s.PVariables != nil:
			var defs []*ast.PVariable
			for _, pd := range s.PVariables.Defs {
				folded, err := foldPVariableDef(pd)
				if err != nil {
					return nil, err
				}
				defs = append(defs, folded)
			}
			sections["pvariables"] = defs
			traceSection(trace, "pvariables")
		case s.CPFs != nil:
			var defs []*ast.CPF
			for _, cd := range s.CPFs.Defs {
				folded, err := foldCPFDef(cd)
				if err != nil {
					return nil, err
				}
				defs = append(defs, folded)
			}
			sections["cpfs"] = ast.CPFBlock{Header: s.CPFs.Header, Defs: defs}
			traceSection(trace, "cpfs")
		case s.Reward != nil:
			folded, err := foldExpr(s.Reward.Expr)
			if err != nil {
				return nil, err
			}
			sections["reward"] = folded
			traceSection(trace, "reward")
		case s.Preconds != nil:
			folded, err := foldExprListSection(s.Preconds)
			if err != nil {
				return nil, err
			}
			sections["preconds"] = folded
			traceSection(trace, "action-preconditions")
		case s.Constraints != nil:
			folded, err := foldExprListSection(s.Constraints)
			if err != nil {
				return nil, err
			}
			sections["constraints"] = folded
			traceSection(trace, "state-action-constraints")
		case s.Invariants != nil:
			folded, err := foldExprListSection(s.Invariants)
			if err != nil {
				return nil, err
			}
			sections["invariants"] = folded
			traceSection(trace, "state-invariants")
		}
	}
	return ast.NewDomain(n.Name, n.Requirements, sections)
}

func foldObjectDecls(decls []*objectDecl) []ast.ObjectDecl {
	out := make([]ast.ObjectDecl, len(decls))
	for i, d := range decls {
		out[i] = ast.ObjectDecl{TypeName: d.TypeName, Objects: d.Objects}
	}
	return out
}

func foldInitValue(n *rangeConst) (ast.InitValue, error) {
	switch {
	case n.Bool != nil:
		return ast.InitValue{Bool: n.Bool}, nil
	case n.Double != nil:
		v := *n.Double
		if n.Negative {
			v = -v
		}
		return ast.InitValue{Float: &v}, nil
	case n.Int != nil:
		v := *n.Int
		if n.Negative {
			v = -v
		}
		return ast.InitValue{Int: &v}, nil
	case n.Ident != nil:
		return ast.InitValue{Enum: n.Ident}, nil
	default:
		return ast.InitValue{}, oops.Code("build_error").Errorf("empty pvariable-instantiation value")
	}
}

func foldPvarInstDef(n *pvarInstDef) (ast.Initializer, error) {
	var params []ast.Term
	for i := range n.Params {
		t, err := foldTerm(&n.Params[i])
		if err != nil {
			return ast.Initializer{}, err
		}
		params = append(params, *t)
	}

	if n.Value != nil {
		v, err := foldInitValue(n.Value)
		if err != nil {
			return ast.Initializer{}, err
		}
		return ast.Initializer{Functor: n.Name, Params: params, Value: v}, nil
	}

	truthVal := !n.Negated
	return ast.Initializer{Functor: n.Name, Params: params, Value: ast.InitValue{Bool: &truthVal}}, nil
}

func foldPvarInstDefs(defs []*pvarInstDef) ([]ast.Initializer, error) {
	out := make([]ast.Initializer, len(defs))
	for i, d := range defs {
		folded, err := foldPvarInstDef(d)
		if err != nil {
			return nil, err
		}
		out[i] = folded
	}
	return out, nil
}

func foldNonFluentsBlock(n *nonFluentsBlock, trace io.Writer) (*ast.NonFluents, error) {
	nf := &ast.NonFluents{Name: n.Name}
	for _, s := range n.Sections {
		switch {
		case s.Domain != nil:
			nf.Domain = *s.Domain
			traceSection(trace, "non-fluents domain")
		case s.Objects != nil:
			nf.Objects = foldObjectDecls(s.Objects.Decls)
			traceSection(trace, "objects")
		case s.NonFluents != nil:
			inits, err := foldPvarInstDefs(s.NonFluents.Defs)
			if err != nil {
				return nil, err
			}
			nf.InitNonFluent = inits
			traceSection(trace, "init-non-fluent")
		}
	}
	return nf, nil
}

// foldInstanceBlock folds an instance block, additionally returning a
// synthesized anonymous NonFluents when the block embeds one inline
// rather than referencing one by name.
func foldInstanceBlock(n *instanceBlock, trace io.Writer) (*ast.Instance, *ast.NonFluents, error) {
	inst := &ast.Instance{Name: n.Name}
	var inline *ast.NonFluents
	for _, s := range n.Sections {
		switch {
		case s.Domain != nil:
			inst.Domain = *s.Domain
			traceSection(trace, "instance domain")
		case s.NonFluentsRef != nil:
			inst.NonFluents = *s.NonFluentsRef
			traceSection(trace, "non-fluents reference")
		case s.InlineNonFluents != nil:
			inits, err := foldPvarInstDefs(s.InlineNonFluents.Defs)
			if err != nil {
				return nil, nil, err
			}
			inline = &ast.NonFluents{Name: anonymousNonFluentsName, Domain: inst.Domain, InitNonFluent: inits}
			inst.NonFluents = anonymousNonFluentsName
			traceSection(trace, "inline non-fluents")
		case s.Objects != nil:
			inst.Objects = foldObjectDecls(s.Objects.Decls)
			traceSection(trace, "objects")
		case s.InitState != nil:
			inits, err := foldPvarInstDefs(s.InitState.Defs)
			if err != nil {
				return nil, nil, err
			}
			inst.InitState = inits
			traceSection(trace, "init-state")
		case s.MaxNondefActions != nil:
			inst.MaxNondefActions = ast.MaxNondefActions{
				PosInf: s.MaxNondefActions.PosInf,
				Value:  s.MaxNondefActions.Value,
			}
			traceSection(trace, "max-nondef-actions")
		case s.Horizon != nil:
			h := ast.Horizon{PosInf: s.Horizon.PosInf}
			if s.Horizon.Value != nil {
				h.Steps = *s.Horizon.Value
			}
			if s.Horizon.TerminateWhen != nil {
				folded, err := foldExpr(s.Horizon.TerminateWhen)
				if err != nil {
					return nil, nil, err
				}
				h.TerminateWhen = folded
			}
			inst.Horizon = h
			traceSection(trace, "horizon")
		case s.Discount != nil:
			inst.Discount = *s.Discount
			traceSection(trace, "discount")
		}
	}
	return inst, inline, nil
}
