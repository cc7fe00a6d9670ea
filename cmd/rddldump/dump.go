// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holocore/rddl/pkg/rddl"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.rddl>",
		Short: "Parse an RDDL file and print its model as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args[0])
		},
	}
}

func runDump(cmd *cobra.Command, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return oops.Code("io_error").With("path", path).Wrap(err)
	}

	var opts []rddl.Option
	if verbose {
		opts = append(opts, rddl.WithVerbose(true), rddl.WithTraceWriter(cmd.ErrOrStderr()))
	}

	root, err := rddl.Parse(string(source), opts...)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(dumpView{
		Domain:      root.Domain.Name,
		NonFluents:  root.NonFluents.Name,
		Instance:    root.Instance.Name,
		PVariables:  pvariableNames(root.Domain),
		StateCPFs:   cpfNames(root.Domain.StateCPFs()),
		ObjectTypes: objectTypeSizes(root),
	}, "", "  ")
	if err != nil {
		return oops.Code("io_error").Wrap(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

// dumpView is a deliberately flat summary of the parsed model; the full
// AST is available to Go callers through pkg/rddl, not through this CLI.
type dumpView struct {
	Domain      string         `json:"domain"`
	NonFluents  string         `json:"non_fluents"`
	Instance    string         `json:"instance"`
	PVariables  []string       `json:"pvariables"`
	StateCPFs   []string       `json:"state_cpfs"`
	ObjectTypes map[string]int `json:"object_types"`
}

func pvariableNames(d *rddl.Domain) []string {
	out := make([]string, 0, len(d.PVariables))
	for _, p := range d.PVariables {
		out = append(out, p.String())
	}
	return out
}

func cpfNames(cpfs []*rddl.CPF) []string {
	out := make([]string, 0, len(cpfs))
	for _, c := range cpfs {
		out = append(out, c.Name())
	}
	return out
}

func objectTypeSizes(r *rddl.RDDL) map[string]int {
	out := make(map[string]int, len(r.ObjectTable))
	for name, table := range r.ObjectTable {
		out[name] = table.Size
	}
	return out
}
