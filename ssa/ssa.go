// Package ssa wraps golang.org/x/tools/go/ssa with just enough helper
// machinery to get from Go source to a *ssa.Function: building a program
// (see the build subpackage), locating its main packages (MainPkgs), and
// resolving a "pkg/path".FuncName string to the function body domssa
// analyses (FindFunc).
package ssa

import (
	"go/token"
	"io"

	"golang.org/x/tools/go/loader"
	"golang.org/x/tools/go/ssa"
)

// Info holds the results of building a program's SSA IR. The build
// subpackage populates this structure.
type Info struct {
	IgnoredPkgs []string // Packages skipped during the build; see Config.AddBadPkg.

	FSet  *token.FileSet  // FileSet for parsed source files.
	Prog  *ssa.Program    // SSA IR for the whole program.
	LProg *loader.Program // Loaded program from go/loader.

	BldLog io.Writer // Build log.
}
