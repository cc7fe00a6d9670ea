// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 RDDL Contributors

// Package names centralizes the "current" / "next-state" fluent naming
// convention: a functor/arity name becomes functor'/arity for the
// next-state version, with the prime attached to the functor just before
// the arity separator.
package names

import (
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// split breaks a canonical "functor/arity" name into its two parts. It
// requires exactly one '/' separator.
func split(name string) (functor string, arity string, err error) {
	i := strings.LastIndex(name, "/")
	if i < 0 || strings.Count(name, "/") != 1 {
		return "", "", oops.Code("bad_canonical_name").With("name", name).
			Errorf("%q is not a canonical functor/arity name", name)
	}
	return name[:i], name[i+1:], nil
}

// CurrentOf returns the current-state name for a primed next-state name,
// e.g. "rlevel'/1" -> "rlevel/1". It returns an error rather than silently
// truncating a wrong character when the functor does not actually end in
// a prime — a case the name would otherwise be misclassified under.
func CurrentOf(next string) (string, error) {
	functor, arity, err := split(next)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(functor, "'") {
		return "", oops.Code("bad_canonical_name").With("name", next).
			Errorf("CPF head %q is not a primed state-fluent", next)
	}
	return strings.TrimSuffix(functor, "'") + "/" + arity, nil
}

// NextOf returns the primed next-state name for a current-state name,
// e.g. "rlevel/1" -> "rlevel'/1".
func NextOf(current string) (string, error) {
	functor, arity, err := split(current)
	if err != nil {
		return "", err
	}
	return functor + "'/" + arity, nil
}

// ArityOf parses the arity suffix of a canonical name.
func ArityOf(name string) (int, error) {
	_, arity, err := split(name)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(arity)
	if convErr != nil {
		return 0, oops.Code("bad_canonical_name").With("name", name).Wrap(convErr)
	}
	return n, nil
}
