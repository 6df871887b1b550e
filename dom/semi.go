package dom

// semiDominators computes semi[w] for every w in decreasing DFS order, and
// leaves idom[w] holding either the final immediate dominator (when
// idom[w] == semi[w]) or a vertex u whose immediate dominator is also w's,
// which fixupIdom resolves in a second pass.
//
// Bucket processing is reordered per Georgiadis-Tarjan-Werneck: the bucket
// for w is drained at the start of w's own iteration rather than at the end
// of parent[w]'s, so each bucket is touched exactly once (append, drain)
// and never needs clearing.
func (b *builder[V]) semiDominators() {
	n := len(b.vertex)
	b.ancestor = make([]int, n)
	for i := range b.ancestor {
		b.ancestor[i] = -1
	}
	b.idom = make([]int, n)
	b.bucket = make([][]int, n)

	for w := n - 1; w >= 1; w-- {
		for _, v := range b.bucket[w] {
			u := b.eval(v)
			if b.semi[u] < b.semi[v] {
				b.idom[v] = u
			} else {
				b.idom[v] = w
			}
		}
		b.bucket[w] = nil

		for _, v := range b.predecessors[w] {
			u := b.eval(v)
			if b.semi[u] < b.semi[w] {
				b.semi[w] = b.semi[u]
			}
		}
		b.bucket[b.semi[w]] = append(b.bucket[b.semi[w]], w)
		b.link(b.parent[w], w)
	}

	// Final step-3 application: the bucket for the entry (index 0) is
	// never drained inside the loop above, since the loop stops at w=1.
	for _, v := range b.bucket[0] {
		u := b.eval(v)
		if b.semi[u] < b.semi[v] {
			b.idom[v] = u
		} else {
			b.idom[v] = 0
		}
	}
}

// fixupIdom walks vertices in increasing DFS order, replacing any idom[w]
// that differs from semi[w] with idom[idom[w]], the true immediate dominator.
func (b *builder[V]) fixupIdom() {
	for w := 1; w < len(b.vertex); w++ {
		if b.idom[w] != b.semi[w] {
			b.idom[w] = b.idom[b.idom[w]]
		}
	}
	b.idom[0] = 0
}

// checkIdomOrder asserts invariant 2 of the data model: every non-entry
// vertex's immediate dominator precedes it in DFS order. A violation here
// means the algorithm above has a bug, not that the caller misused it.
func (b *builder[V]) checkIdomOrder() {
	for w := 1; w < len(b.idom); w++ {
		if b.idom[w] >= w {
			panic(ErrInvariant{Where: "idom[w] must precede w in DFS order"})
		}
	}
}
