// Package domssa adapts the dom package's generic dominator analysis to
// golang.org/x/tools/go/ssa control-flow graphs, so callers working with
// *ssa.Function can query dominance without hand-rolling a
// *ssa.BasicBlock successor walk of their own.
package domssa

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"golang.org/x/tools/go/ssa"

	"github.com/nickng/domtree/dom"
)

// ErrNoBlocks is returned by Build for a Function with no basic blocks
// (e.g. an external or unimplemented function), which has no meaningful
// dominator tree.
var ErrNoBlocks = errors.New("domssa: function has no basic blocks")

// Option configures Build.
type Option func(*config)

type config struct {
	logger *log.Logger
}

// WithLogger routes trace messages to l instead of discarding them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Info is the dominator analysis of one *ssa.Function's control-flow graph.
type Info struct {
	fn   *ssa.Function
	anal *dom.Analysis[*ssa.BasicBlock]
}

// Build computes the dominator tree of fn's control-flow graph, entered at
// fn.Blocks[0].
func Build(fn *ssa.Function, opts ...Option) (*Info, error) {
	cfg := &config{logger: log.New(ioutil.Discard, "domssa: ", 0)}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(fn.Blocks) == 0 {
		return nil, ErrNoBlocks
	}
	cfg.logger.Printf("building dominator tree for %s (%d blocks)", fn, len(fn.Blocks))

	anal, err := dom.New(fn.Blocks[0], len(fn.Blocks), successors)
	if err != nil {
		return nil, err
	}
	return &Info{fn: fn, anal: anal}, nil
}

// successors enumerates a basic block's successors in ssa.BasicBlock's own
// stable order: Succs.
func successors(b *ssa.BasicBlock, visit func(*ssa.BasicBlock)) {
	for _, succ := range b.Succs {
		visit(succ)
	}
}

// Func returns the analysed function.
func (i *Info) Func() *ssa.Function {
	return i.fn
}

// Idom returns the immediate dominator of b. ok is false if b is the entry
// block.
func (i *Info) Idom(b *ssa.BasicBlock) (dominator *ssa.BasicBlock, ok bool, err error) {
	return i.anal.Idom(b)
}

// Dominates reports whether a dominates b.
func (i *Info) Dominates(a, b *ssa.BasicBlock) (bool, error) {
	return i.anal.Dominates(a, b)
}

// DominatorsOf returns the strict dominators of b, entry block first.
func (i *Info) DominatorsOf(b *ssa.BasicBlock) ([]*ssa.BasicBlock, error) {
	return i.anal.DominatorsOf(b)
}

// Tree returns the dominator tree as a map from block to the blocks it
// immediately dominates.
func (i *Info) Tree() map[*ssa.BasicBlock][]*ssa.BasicBlock {
	blocks := i.anal.Vertices()
	tree := make(map[*ssa.BasicBlock][]*ssa.BasicBlock, len(blocks))
	for idx, children := range i.anal.Tree() {
		kids := make([]*ssa.BasicBlock, len(children))
		for k, ci := range children {
			kids[k] = blocks[ci]
		}
		tree[blocks[idx]] = kids
	}
	return tree
}

// WriteDot writes the dominator tree of the analysed function to w in
// Graphviz .dot format, for the -dot mode of cmd/domview.
func (i *Info) WriteDot(w io.Writer) error {
	blocks := i.anal.Vertices()
	idom := i.anal.ImmediateDominators()
	if _, err := fmt.Fprintf(w, "digraph domtree {\n\tlabel=%q;\n", i.fn.String()); err != nil {
		return err
	}
	for idx, b := range blocks {
		if _, err := fmt.Fprintf(w, "\tn%d [label=%q];\n", idx, b.String()); err != nil {
			return err
		}
	}
	for idx := 1; idx < len(blocks); idx++ {
		if _, err := fmt.Fprintf(w, "\tn%d -> n%d;\n", idom[idx], idx); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
