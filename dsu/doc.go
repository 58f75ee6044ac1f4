// Package dsu implements a Disjoint Set Union (Union-Find) structure over a
// dense range of integer elements 0..n-1, with full path compression and
// union by rank.
//
// What & Why
//
//   - What is a DSU?
//     A partition of n elements into disjoint sets, supporting two queries:
//     "which set does this element belong to" (Find) and "merge these two
//     sets" (Union). With path compression and union by rank both run in
//     amortized O(α(n)) time, where α is the inverse Ackermann function —
//     effectively constant for any realistic n.
//
//   - Why DSU matters:
//
//   - Cycle detection: Kruskal's MST algorithm asks, for each candidate
//     edge, whether its endpoints are already connected; DSU answers in
//     near-constant time.
//
//   - Connected components: incremental union of edges yields the component
//     structure of a graph without any traversal.
//
//   - Equivalence classes: any incremental "these two are the same" relation
//     (type unification, image segmentation, network reachability) maps onto
//     DSU directly.
//
// Representation
//
// Two int slices, parent and rank, indexed by element. parent always forms a
// forest of rooted trees over [0,n): an element is a root iff it is its own
// parent. rank starts at 1 for every singleton and only ever grows on the
// root chosen as a merge target; it is a tie-break heuristic bounding tree
// height, not an exact height.
//
// Find walks parent pointers to the root, then re-points every visited node
// directly at that root (full compression, two passes). The re-pointing is
// an internal representation change only: it never alters set membership, so
// Find is observably idempotent.
//
// Union attaches the root of the lower-rank tree under the root of the
// higher-rank tree. On a rank tie the second argument's root goes under the
// first argument's root, whose rank then increments by exactly 1. Union
// reports whether a merge actually happened, which is exactly the signal a
// greedy edge-acceptance loop needs.
//
// Error Conditions
//
//	Both constructor and queries return sentinel errors for contract
//	violations; there is no recovery path inside the structure:
//
//	- ErrNegativeSize
//	    - New called with n < 0. n == 0 is valid (empty structure).
//
//	- ErrIndexOutOfRange
//	    - Find, Union or Connected called with an element outside [0,n).
//	      A caller bug, never silently tolerated.
//
// Complexity
//
//	– New:    O(n) time and space.
//	– Find:   O(α(n)) amortized.
//	– Union:  O(α(n)) amortized (two Finds plus O(1) relinking).
//	– Count:  O(1) (maintained incrementally).
//
// For usage see example_test.go in this package.
package dsu
