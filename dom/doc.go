// Package dom computes immediate dominators and the dominator tree of a
// directed control-flow graph using the Lengauer-Tarjan algorithm.
//
// The package is generic over the vertex type: callers provide an entry
// vertex, an upper bound on the number of reachable vertices, and a
// successor-enumeration callback. Analysis is performed once at
// construction; the result is read-only thereafter and safe for concurrent
// queries.
//
// We use the algorithm described in Lengauer & Tarjan, 1979, "A fast
// algorithm for finding dominators in a flowgraph",
// http://doi.acm.org/10.1145/357062.357071, with the bucket-processing
// reordering of Georgiadis, Tarjan & Werneck, "Finding Dominators in
// Practice", JGAA 2006, which moves the step-3 fix-up to the start of each
// iteration so that every bucket is an append-only list drained exactly once.
package dom
