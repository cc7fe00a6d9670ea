// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holocore/rddl/pkg/rddl"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the parsed RDDL model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := generateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return nil
		},
	}
}

// generateSchema reflects the public RDDL type into a JSON Schema
// document, the way a Go client library would validate a serialized
// model before decoding it.
func generateSchema() ([]byte, error) {
	r := jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect(&rddl.RDDL{})
	schema.ID = "https://rddl.dev/schemas/rddl.schema.json"
	schema.Title = "RDDL parsed model"
	schema.Description = "JSON Schema for the root RDDL type produced by rddl.Parse"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.Code("io_error").Wrap(err)
	}
	return append(data, '\n'), nil
}
