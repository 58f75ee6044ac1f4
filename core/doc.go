// Package core defines the central Graph and Edge types for MST
// computation: dense zero-based integer vertices and an insertion-ordered
// sequence of weighted undirected edges.
//
// Data model
//
// Vertices carry no attributes; a vertex is just an index in [0,n). The
// vertex set is implicit: it is the union of all endpoints ever seen by
// AddEdge, and VertexCount reports the number of distinct indices. An edge
// referencing a never-seen index grows the vertex set as a side effect of
// being added.
//
// Edges are immutable (From, To, Weight) values stored verbatim in
// insertion order. Duplicate and reverse records of the same undirected
// connection — both (u,v,w) and (v,u,w) — are permitted and kept as
// independent records; deduplication is not this package's concern, because
// connectivity tracking downstream suppresses their effect naturally.
// Weights are not validated.
//
// Concurrency
//
// Graph, like every mutable container in this module, guards its state with
// a sync.RWMutex: AddEdge takes the write lock, all accessors take the read
// lock, so a graph built on one goroutine may be read by any number of
// concurrent readers afterwards. Accessors return defensive copies; callers
// never observe internal storage.
//
// Complexity: AddEdge O(1) amortized; VertexCount and EdgeCount O(1);
// Vertices O(V log V) (sorted for determinism); Edges O(E) copy.
package core
