package core

import "sort"

// AddEdge appends the edge (from, to, weight) to the edge sequence and adds
// both endpoints to the vertex set if not already present. The record is
// stored verbatim: duplicates, reverse edges and self-loops are all
// permitted, and the weight is not validated.
//
// Returns ErrNegativeVertex if either endpoint is negative.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if from < 0 || to < 0 {
		return ErrNegativeVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.vertices.Add(from)
	g.vertices.Add(to)

	return nil
}

// VertexCount returns the number of distinct vertex indices seen so far.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Cardinality()
}

// EdgeCount returns the number of edge records, counting duplicates and
// reverse records separately.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Vertices returns the distinct vertex indices in ascending order.
// The slice is a fresh copy owned by the caller.
//
// Complexity: O(V log V)
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	verts := g.vertices.ToSlice()
	g.mu.RUnlock()

	sort.Ints(verts)

	return verts
}

// Edges returns the edge sequence in insertion order.
// The slice is a fresh copy owned by the caller; mutating it does not
// affect the graph.
//
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
