// Package dsu provides the Union-Find structure backing Kruskal's algorithm.
// This file declares the DSU type, its sentinel errors and all operations.
package dsu

import "errors"

// Sentinel errors for DSU contract violations.
var (
	// ErrNegativeSize indicates New was called with a negative element count.
	ErrNegativeSize = errors.New("dsu: negative element count")

	// ErrIndexOutOfRange indicates an element outside [0,n) was passed to
	// Find, Union or Connected.
	ErrIndexOutOfRange = errors.New("dsu: element index out of range")
)

// DSU maintains a partition of elements 0..n-1 into disjoint sets.
//
// The zero value is not usable; construct with New. A DSU is not safe for
// concurrent use: Find mutates parent pointers (path compression) even
// though it is observably a pure query.
type DSU struct {
	parent []int // parent[i] == i  ⇔  i is a root
	rank   []int // tie-break heuristic; meaningful only on roots
	count  int   // number of distinct sets
}

// New constructs a DSU over elements 0..n-1, each its own singleton set
// with rank 1. Returns ErrNegativeSize if n < 0; n == 0 yields a valid
// empty structure.
//
// Complexity: O(n).
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.rank[i] = 1
	}

	return d, nil
}

// Find returns the canonical root of v's set, applying full path
// compression: after the root is located, every node on the walked path is
// re-pointed directly at it. The return value is stable across repeated
// calls with no intervening Union.
//
// Returns ErrIndexOutOfRange if v is outside [0,n).
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(v int) (int, error) {
	if v < 0 || v >= len(d.parent) {
		return 0, ErrIndexOutOfRange
	}

	// First pass: walk up to the fixed point parent[root] == root.
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: re-point every visited node directly at the root.
	for v != root {
		v, d.parent[v] = d.parent[v], root
	}

	return root, nil
}

// Union merges the sets containing a and b. It returns false when the two
// are already connected (no-op) and true when a merge happened, in which
// case the number of distinct sets decreases by exactly 1.
//
// The lower-rank root is attached under the higher-rank root; on a rank tie
// b's root is attached under a's root and a's root's rank increments by 1.
//
// Returns ErrIndexOutOfRange if either element is outside [0,n).
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	if ra == rb {
		// Already in the same set; adding this link would close a cycle.
		return false, nil
	}

	// Attach the smaller-rank tree under the larger-rank root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.count--

	return true, nil
}

// Connected reports whether a and b belong to the same set.
//
// Returns ErrIndexOutOfRange if either element is outside [0,n).
func (d *DSU) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Count returns the number of distinct sets: n minus the number of
// successful (true-returning) Union calls so far.
//
// Complexity: O(1).
func (d *DSU) Count() int {
	return d.count
}

// Len returns the number of elements the DSU was constructed over.
func (d *DSU) Len() int {
	return len(d.parent)
}
