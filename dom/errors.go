package dom

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned by New when numVertices is 0.
var ErrEmptyGraph = errors.New("dom: graph has no vertices")

// ErrUnknownVertex is returned by queries given a vertex absent from the
// analysis, i.e. one that was never assigned a DFS index.
var ErrUnknownVertex = errors.New("dom: vertex not reachable from entry")

// ErrInvariant signals a bug in the algorithm itself, as opposed to caller
// misuse. It is never expected to surface outside this package's own tests.
type ErrInvariant struct {
	Where string
}

func (e ErrInvariant) Error() string {
	return fmt.Sprintf("dom: invariant violated: %s", e.Where)
}
