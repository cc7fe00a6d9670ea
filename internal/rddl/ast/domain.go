// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package ast

import (
	"sort"

	"github.com/samber/oops"

	"github.com/holocore/rddl/internal/rddl/names"
)

// TypeDef is one `types { ... }` entry: either the literal "object" or an
// enumeration's label list.
type TypeDef struct {
	Name       string
	IsObject   bool
	EnumLabels []string // populated when !IsObject
}

// CPFBlock is the domain's cpfs/cdfs section: the header keyword actually
// used in source (both are accepted and semantically identical) and the
// definitions it introduced.
type CPFBlock struct {
	Header string // "cpfs" or "cdfs"
	Defs   []*CPF
}

// Domain is a parsed `domain { ... }` block together with the sections a
// conforming input MUST supply (pvariables, cpfs, reward) and those it MAY
// omit (types, preconditions, constraints, invariants).
type Domain struct {
	Name         string
	Requirements []string
	Types        []TypeDef
	PVariables   []*PVariable
	CPFs         CPFBlock
	Reward       *Expression
	Preconds     []*Expression
	Constraints  []*Expression
	Invariants   []*Expression
}

// NewDomain builds a Domain from its parsed sections, failing with a
// build_error if any of the three required sections (pvariables, cpfs,
// reward) is absent. Types, preconds, constraints, and invariants default
// to empty when the block never declared them.
func NewDomain(name string, requirements []string, sections map[string]any) (*Domain, error) {
	pvars, ok := sections["pvariables"].([]*PVariable)
	if !ok {
		return nil, oops.Code("build_error").With("domain", name).
			Errorf("domain %q is missing its pvariables section", name)
	}
	cpfs, ok := sections["cpfs"].(CPFBlock)
	if !ok {
		return nil, oops.Code("build_error").With("domain", name).
			Errorf("domain %q is missing its cpfs section", name)
	}
	reward, ok := sections["reward"].(*Expression)
	if !ok {
		return nil, oops.Code("build_error").With("domain", name).
			Errorf("domain %q is missing its reward section", name)
	}

	d := &Domain{
		Name:         name,
		Requirements: requirements,
		PVariables:   pvars,
		CPFs:         cpfs,
		Reward:       reward,
	}
	if v, ok := sections["types"].([]TypeDef); ok {
		d.Types = v
	}
	if v, ok := sections["preconds"].([]*Expression); ok {
		d.Preconds = v
	}
	if v, ok := sections["constraints"].([]*Expression); ok {
		d.Constraints = v
	}
	if v, ok := sections["invariants"].([]*Expression); ok {
		d.Invariants = v
	}
	for _, p := range d.PVariables {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Domain) fluentsOf(ft FluentType) map[string]*PVariable {
	out := make(map[string]*PVariable)
	for _, p := range d.PVariables {
		if p.FluentType == ft {
			out[p.String()] = p
		}
	}
	return out
}

// NonFluents returns the functor/arity -> PVariable mapping of all
// non-fluents declared in this domain.
func (d *Domain) NonFluents() map[string]*PVariable { return d.fluentsOf(NonFluent) }

// StateFluents returns the functor/arity -> PVariable mapping of all
// state-fluents declared in this domain.
func (d *Domain) StateFluents() map[string]*PVariable { return d.fluentsOf(StateFluent) }

// ActionFluents returns the functor/arity -> PVariable mapping of all
// action-fluents declared in this domain.
func (d *Domain) ActionFluents() map[string]*PVariable { return d.fluentsOf(ActionFluent) }

// IntermediateFluents returns the functor/arity -> PVariable mapping of all
// interm-fluents declared in this domain.
func (d *Domain) IntermediateFluents() map[string]*PVariable { return d.fluentsOf(IntermFluent) }

// IntermediateCPFs returns the CPFs whose head names an interm-fluent,
// ordered ascending by (level, functor/arity name) as required for
// correct sequential evaluation.
func (d *Domain) IntermediateCPFs() []*CPF {
	interm := d.IntermediateFluents()
	var out []*CPF
	for _, cpf := range d.CPFs.Defs {
		if _, ok := interm[cpf.Name()]; ok {
			out = append(out, cpf)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		li := *interm[out[i].Name()].Level
		lj := *interm[out[j].Name()].Level
		if li != lj {
			return li < lj
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// StateCPFs returns the CPFs whose head is a primed next-state functor
// corresponding to a declared state-fluent, sorted by name.
func (d *Domain) StateCPFs() []*CPF {
	state := d.StateFluents()
	var out []*CPF
	for _, cpf := range d.CPFs.Defs {
		current, err := names.CurrentOf(cpf.Name())
		if err != nil {
			continue
		}
		if _, ok := state[current]; ok {
			out = append(out, cpf)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// objectTypeNames returns the names of every type declared as `object`,
// used by RDDL.Build to populate the object table.
func (d *Domain) objectTypeNames() []string {
	var out []string
	for _, t := range d.Types {
		if t.IsObject {
			out = append(out, t.Name)
		}
	}
	return out
}
