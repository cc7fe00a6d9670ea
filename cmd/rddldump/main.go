// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

// Command rddldump parses RDDL domain/instance/non-fluents files and
// dumps the resulting model as JSON, or emits the model's JSON Schema.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/holocore/rddl/internal/rddl/errutil"
	"github.com/holocore/rddl/internal/rddl/rddllog"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	rddllog.SetDefault("rddldump", version, "text")

	if err := NewRootCmd().Execute(); err != nil {
		errutil.LogError(slog.Default(), "rddldump failed", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
