// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package ast

import (
	"github.com/samber/oops"
)

// ObjectTable is the per-type object population computed by RDDL.Build:
// for each declared `object`-kind type, its size, its declaration-order
// object list, and the inverse name-to-index map.
type ObjectTable struct {
	Size    int
	Idx     map[string]int
	Objects []string
}

// RDDL is the root of a parsed description: exactly one Domain, one
// NonFluents block, and one Instance, plus (after Build) the derived
// per-type object population.
type RDDL struct {
	Domain     *Domain
	NonFluents *NonFluents
	Instance   *Instance

	ObjectTable map[string]*ObjectTable
}

// NewRDDL assembles the root container from the three named blocks the
// top-level grammar collected, keyed by block kind ("domain",
// "non_fluents", "instance"). Later blocks of the same kind are expected
// to have already overwritten earlier ones by the time this is called,
// per the grammar's last-one-wins rule for duplicate blocks.
func NewRDDL(domain *Domain, nonFluents *NonFluents, instance *Instance) *RDDL {
	return &RDDL{Domain: domain, NonFluents: nonFluents, Instance: instance}
}

// Build constructs the object table: for every type the domain declares as
// `object`, it looks up that type's population in the non-fluents block's
// Objects list and then the instance block's (an instance declaration of
// the same type replaces the non-fluents one), and records its size, its
// object list in declaration order, and the name-to-index map. A declared
// object-kind type absent from both blocks' object declarations is a
// programmer error in the input and is reported, not silently defaulted
// to empty.
func (r *RDDL) Build() error {
	table := make(map[string]*ObjectTable)
	declared := make(map[string][]string)
	for _, decl := range r.NonFluents.Objects {
		declared[decl.TypeName] = decl.Objects
	}
	for _, instDecl := range r.Instance.Objects {
		declared[instDecl.TypeName] = instDecl.Objects
	}

	for _, t := range r.Domain.Types {
		if !t.IsObject {
			continue
		}
		objects, ok := declared[t.Name]
		if !ok {
			return oops.Code("build_error").With("type", t.Name).
				Errorf("object type %q has no population in the non-fluents or instance block", t.Name)
		}
		idx := make(map[string]int, len(objects))
		for i, o := range objects {
			idx[o] = i
		}
		table[t.Name] = &ObjectTable{Size: len(objects), Idx: idx, Objects: objects}
	}

	r.ObjectTable = table
	return nil
}
