package ssa

import (
	"regexp"
	"strings"

	"golang.org/x/tools/go/callgraph"
	"golang.org/x/tools/go/callgraph/rta"
	"golang.org/x/tools/go/ssa"
)

// FindFunc parses path (e.g. "github.com/nickng/domtree/ssa".MainPkgs) and
// returns the matching Function body in SSA IR, restricted to functions
// reachable from a main package; it returns a nil Function (no error) if
// nothing matches.
func (info *Info) FindFunc(path string) (*ssa.Function, error) {
	pkgPath, fnName := parseFuncPath(path)
	funcs, err := info.reachableFuncs()
	if err != nil {
		return nil, err
	}
	for _, f := range funcs {
		if f.Pkg.Pkg.Path() == pkgPath && f.Name() == fnName {
			return f, nil
		}
	}
	return nil, nil
}

// reachableFuncs returns every function reachable from the program's
// main.init/main.main via Rapid Type Analysis. RTA is the only call-graph
// algorithm the dominator domain needs: domview only ever resolves a
// concrete, already-running function to feed domssa.Build, so unsound
// over-approximations (CHA) and the cost of a full points-to analysis
// (PTA) buy nothing here.
func (info *Info) reachableFuncs() ([]*ssa.Function, error) {
	mains, err := MainPkgs(info.Prog, false)
	if err != nil {
		return nil, err
	}
	var roots []*ssa.Function
	for _, main := range mains {
		if fn := main.Func("main"); fn != nil {
			roots = append(roots, main.Func("init"), fn)
		}
	}

	cg := rta.Analyze(roots, true).CallGraph
	cg.DeleteSyntheticNodes()

	visited := make(map[*ssa.Function]bool)
	for _, root := range roots {
		visited[root] = true
	}
	err = callgraph.GraphVisitEdges(cg, func(edge *callgraph.Edge) error {
		visited[edge.Caller.Func] = true
		visited[edge.Callee.Func] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	funcs := make([]*ssa.Function, 0, len(visited))
	for fn := range visited {
		funcs = append(funcs, fn)
	}
	return funcs, nil
}

// parseFuncPath splits path into package and function segments.
// Does not handle methods with receivers.
func parseFuncPath(path string) (pkgPath, fnName string) {
	if len(path) < 1 {
		return "", ""
	}
	switch path[0] {
	case '(':
		regex := regexp.MustCompile(`\((?P<pkg>[^)]+)\).(?P<fn>.+)`)
		submatches := regex.FindStringSubmatch(path)
		if len(submatches) >= 3 {
			return submatches[1], submatches[2]
		}
	case '"':
		regex := regexp.MustCompile(`"(?P<pkg>[^)]+)".(?P<fn>.+)`)
		submatches := regex.FindStringSubmatch(path)
		if len(submatches) >= 3 {
			return submatches[1], submatches[2]
		}
	default:
		parts := strings.Split(path, ".")
		if len(parts) >= 2 {
			return parts[0], parts[1]
		}
	}
	return "", path
}
