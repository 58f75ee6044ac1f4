// Package kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph using Kruskal's algorithm over the dsu
// package's Union-Find structure.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects all vertices in V (spans the graph) with
//     minimum total edge weight.
//
//   - Why Kruskal:
//
//   - One global pass: sort all edges once, then a single greedy sweep —
//     no heap maintenance, no choice of starting vertex.
//
//   - Cycle detection for free: the Union-Find merge report says exactly
//     whether an edge connects two previously separate components; edges
//     that would close a cycle are skipped without any traversal.
//
//   - Duplicate tolerance: a graph may list both (u,v,w) and (v,u,w) as
//     independent records; once the first merges u and v, connectivity
//     tracking suppresses the second naturally. No deduplication pass.
//
// Strategy
//
// Sort the edge list by ascending weight with a stable sort, so edges of
// equal weight keep their original insertion order — the output is
// byte-for-byte reproducible for a given input graph. Sweep the sorted
// list, accepting every edge whose Union reports a merge, and stop as soon
// as |V|−1 edges are accepted. A sweep that exhausts the list with fewer
// than |V|−1 acceptances means the graph has multiple connected components;
// that is reported as ErrNotConnected rather than returning a partial
// forest.
//
// Error Conditions
//
//	- ErrNilGraph
//	    - graph is nil.
//
//	- ErrNotConnected
//	    - |V| > 1 but no spanning tree covers all vertices (the graph has
//	      two or more connected components).
//
//	- dsu.ErrIndexOutOfRange
//	    - the graph's vertex indices are not dense in [0, |V|): some edge
//	      endpoint is ≥ |V|. A caller contract violation, propagated from
//	      the underlying Union-Find.
//
//	An empty graph (|V| == 0) is NOT an error: the result is a well-defined
//	empty tree with zero edges and zero weight. A single-vertex graph
//	likewise yields an empty tree.
//
// Complexity
//
//	– Time:  O(E log E + α(V)·E) ≈ O(E log V) — the sort dominates
//	  (E = edges, V = vertices, α = inverse Ackermann).
//	– Space: O(E + V) for the sorted copy and the Union-Find arrays.
//
// The computation is single-threaded and synchronous: each call constructs
// its own private Union-Find, owns it exclusively, and discards it with the
// call. Concurrent MST computations over different graphs are independent
// calls with no shared mutable state.
//
// For examples of usage, see the example_test.go file in this package.
package kruskal
