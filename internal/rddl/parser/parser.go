// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package parser

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/samber/oops"

	"github.com/holocore/rddl/internal/rddl/ast"
	"github.com/holocore/rddl/internal/rddl/errutil"
	rddllexer "github.com/holocore/rddl/internal/rddl/lexer"
	"github.com/holocore/rddl/internal/rddl/rddllog"
)

var grammar *participle.Parser[file]

func init() {
	var err error
	grammar, err = participle.Build[file](
		participle.Lexer(rddllexer.Definition),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(participle.MaxLookahead),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build RDDL grammar: %v", err))
	}
}

// config holds the options a caller can set on Parse.
type config struct {
	verbose bool
	trace   io.Writer
}

// Option configures a Parse call.
type Option func(*config)

// WithVerbose causes the parser to write a marker to the trace writer (or
// a temp file, if none is set) after each top-level block is reduced.
func WithVerbose(v bool) Option {
	return func(c *config) { c.verbose = v }
}

// WithTraceWriter sets where the verbose trace is written. If unset and
// verbose is true, Parse creates a temp file to hold it.
func WithTraceWriter(w io.Writer) Option {
	return func(c *config) { c.trace = w }
}

// Parse reduces RDDL source text to a root ast.RDDL. It returns an
// oops-coded error — "syntax_error" for a grammar failure, "build_error"
// for a post-parse consistency failure — and never a partial result.
func Parse(source string, opts ...Option) (*ast.RDDL, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	trace, closeTrace, err := resolveTrace(cfg)
	if err != nil {
		return nil, err
	}
	if closeTrace != nil {
		defer closeTrace()
	}

	if cfg.verbose {
		logIllegalCharacters(source)
	}

	parsed, err := grammar.ParseString("", source)
	if err != nil {
		return nil, syntaxError(err)
	}

	// Blocks may appear in any order and any count; later blocks of the
	// same kind overwrite earlier ones, matching the grammar's dict-keyed
	// block table (spec §4.2 "Top-level grammar").
	blocks := map[string]any{}
	for _, b := range parsed.Blocks {
		switch {
		case b.Domain != nil:
			blocks["domain"] = b.Domain
		case b.Instance != nil:
			blocks["instance"] = b.Instance
		case b.NonFluents != nil:
			blocks["non_fluents"] = b.NonFluents
		}
	}

	domainBlk, _ := blocks["domain"].(*domainBlock)
	instanceBlk, _ := blocks["instance"].(*instanceBlock)
	nonFluentsBlk, _ := blocks["non_fluents"].(*nonFluentsBlock)

	if domainBlk == nil || instanceBlk == nil {
		return nil, oops.Code("build_error").
			Errorf("input must declare exactly one domain block and one instance block")
	}

	domain, err := foldDomainBlock(domainBlk, trace)
	if err != nil {
		return nil, err
	}
	traceSection(trace, fmt.Sprintf("domain %s", domain.Name))

	instance, inlineNonFluents, err := foldInstanceBlock(instanceBlk, trace)
	if err != nil {
		return nil, err
	}
	traceSection(trace, fmt.Sprintf("instance %s", instance.Name))

	var nonFluents *ast.NonFluents
	switch {
	case inlineNonFluents != nil:
		nonFluents = inlineNonFluents
	case nonFluentsBlk != nil:
		nonFluents, err = foldNonFluentsBlock(nonFluentsBlk, trace)
		if err != nil {
			return nil, err
		}
	default:
		return nil, oops.Code("build_error").
			Errorf("instance %q references non-fluents %q, which is not declared", instance.Name, instance.NonFluents)
	}
	traceSection(trace, fmt.Sprintf("non-fluents %s", nonFluents.Name))

	root := ast.NewRDDL(domain, nonFluents, instance)
	if err := root.Build(); err != nil {
		return nil, err
	}
	return root, nil
}

// logIllegalCharacters re-lexes source with the recovering Tokenize and
// logs every illegal-character error it finds through the rddl.component
// "lexer"-scoped default logger, so a verbose Parse surfaces lexical
// problems even though the grammar's fail-fast Definition stops at the
// first one.
func logIllegalCharacters(source string) {
	logger := rddllog.ForComponent(slog.Default(), "lexer")
	_, errs := rddllexer.Tokenize(source)
	for _, err := range errs {
		errutil.LogIllegalCharacter(logger, err)
	}
}

func resolveTrace(cfg *config) (io.Writer, func(), error) {
	if !cfg.verbose {
		return nil, nil, nil
	}
	if cfg.trace != nil {
		return cfg.trace, nil, nil
	}
	f, err := os.CreateTemp("", "rddl-trace-*.log")
	if err != nil {
		return nil, nil, oops.Code("build_error").Wrap(err)
	}
	return f, func() { f.Close() }, nil
}

// syntaxError reformats a participle failure into the exact diagnostic
// text the lexer/parser's diagnostic surface requires: "Syntax error in
// input! Line: <n> failed token:\n<token>".
func syntaxError(err error) error {
	var perr participle.Error
	if pe, ok := err.(participle.Error); ok {
		perr = pe
	}
	if perr == nil {
		return oops.Code("syntax_error").Wrapf(err, "parsing RDDL source")
	}
	pos := perr.Position()
	msg := fmt.Sprintf("Syntax error in input! Line: %d failed token:\n%s", pos.Line, perr.Message())
	return oops.Code("syntax_error").
		With("line", pos.Line).
		With("column", pos.Column).
		Errorf("%s", msg)
}
