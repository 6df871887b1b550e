package ssa

import "errors"

// ErrNoMainPkgs is returned by MainPkgs when a program has no main package,
// e.g. it was built from a library rather than a command.
var ErrNoMainPkgs = errors.New("ssa: no main packages found")

// ErrNoTestMainPkgs is returned by MainPkgs(prog, true) when none of the
// program's packages have tests to synthesize a test-main package from.
var ErrNoTestMainPkgs = errors.New("ssa: no test-main packages found")
