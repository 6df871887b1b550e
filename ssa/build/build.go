// Package build turns Go source into the *ssa.Info the sibling ssa package
// and domssa operate on.
//
// Usage
//
// There are two ways to get there:
//
// Build from a list of source files
//
// FromFiles takes a set of files (typically command-line arguments) and
// treats them as one package, the way cmd/domview does.
//
// Build from a Reader
//
// FromReader is for tests and demos: it reads a whole program from a
// string or io.Reader and type-checks it as a single synthetic file, the
// way domssa_test.go does.
//
package build
