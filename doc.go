// Package spantree computes Minimum Spanning Trees of undirected,
// edge-weighted graphs using Kruskal's algorithm over a Union-Find
// (disjoint-set) structure.
//
// 🚀 What is spantree?
//
//	A small, focused library organized around three subpackages:
//		• core/    — the Graph and Edge primitives: dense integer vertices,
//		             insertion-ordered weighted edges, safe concurrent reads
//		• dsu/     — Union-Find with full path compression and union by rank;
//		             near-constant-time connectivity queries and merges
//		• kruskal/ — the MST builder: stable sort by weight, greedy cycle-free
//		             edge selection, an immutable MinimumSpanningTree result
//
// ✨ Why choose spantree?
//
//   - Deterministic – stable tie-breaking makes every run byte-for-byte
//     reproducible for the same input graph
//   - Explicit errors – disconnected input is a sentinel error, never a crash
//   - Minimal API – build a graph, call kruskal.Kruskal, read the result
//
// Quick ASCII example:
//
//	       4     2     3     3
//	    0 ─── 1 ─── 2 ─── 3 ─── 4
//	                │
//	                │ 2
//	                5
//
//	a spanning tree over six vertices: five edges, no cycles, minimum
//	total weight among all spanning trees of the input graph.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/kvistgo/spantree
package spantree
