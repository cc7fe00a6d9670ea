// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package main

import (
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holocore/rddl/pkg/rddl"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file.rddl>",
		Short: "Lex an RDDL file and print its token stream, recovering from illegal characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}
}

func runTokens(cmd *cobra.Command, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return oops.Code("io_error").With("path", path).Wrap(err)
	}

	tokens, errs := rddl.Lex(string(source))
	for _, tok := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok.String())
	}
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	if len(errs) > 0 {
		return oops.Code("illegal_character").Errorf("%d illegal character(s) encountered", len(errs))
	}
	return nil
}
