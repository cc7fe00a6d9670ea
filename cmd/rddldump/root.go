// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd creates the root command for the rddldump CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rddldump",
		Short: "Parse and inspect RDDL domain descriptions",
		Long: `rddldump parses RDDL (Relational Dynamic Influence Diagram Language)
domain/instance/non-fluents source files and dumps the resulting typed
model, or emits the model's JSON Schema for use by other tooling.`,
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print a trace marker after each block is reduced")

	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newTokensCmd())

	return cmd
}
