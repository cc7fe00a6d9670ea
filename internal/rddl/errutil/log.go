// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

package errutil

import (
	"log/slog"

	"github.com/samber/oops"
)

// LogError logs an error with structured context if it's an oops error.
// For oops errors, it extracts and logs the message, code, context, and stacktrace.
// For standard errors, it logs the error string.
func LogError(logger *slog.Logger, msg string, err error) {
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{
			"error", oopsErr.Error(),
		}
		if code := oopsErr.Code(); code != nil {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", ctx)
		}
		if st := oopsErr.Stacktrace(); st != "" {
			attrs = append(attrs, "stacktrace", st)
		}
		logger.Error(msg, attrs...)
	} else {
		logger.Error(msg, "error", err)
	}
}

// LogIllegalCharacter logs one lexer illegal-character event at warn level,
// the severity the lexer's skip-and-continue recovery calls for rather than
// LogError's hard failure. It promotes the "line" context key the lexer's
// IllegalCharacterError carries (internal/rddl/lexer.Tokenize) to its own
// "rddl.line" attribute instead of leaving it buried in a generic context
// map, so a verbose Parse's illegal-character trace reads the same way its
// section markers do.
func LogIllegalCharacter(logger *slog.Logger, err error) {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		logger.Warn("illegal character", "error", err)
		return
	}
	attrs := []any{"error", oopsErr.Error()}
	if line, ok := oopsErr.Context()["line"]; ok {
		attrs = append(attrs, "rddl.line", line)
	}
	logger.Warn("illegal character", attrs...)
}
