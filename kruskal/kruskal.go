// Package kruskal provides an implementation of Kruskal's Minimum Spanning
// Tree algorithm. It consumes an undirected, weighted *core.Graph and
// produces an immutable MinimumSpanningTree.
package kruskal

import (
	"sort"

	"github.com/kvistgo/spantree/core"
	"github.com/kvistgo/spantree/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted graph. It uses a disjoint-set (union-find) structure with path
// compression and union by rank for near-constant-time cycle detection.
//
// Error Conditions:
//   - ErrNilGraph            : if graph is nil.
//   - ErrNotConnected        : if |V| > 1 but the graph is not fully connected.
//   - dsu.ErrIndexOutOfRange : if vertex indices are not dense in [0, |V|).
//
// Steps:
//  1. Validate: graph != nil. If |V| == 0 → empty tree (no edges, weight 0).
//  2. Collect all edges via graph.Edges(), skip self-loops (e.From == e.To).
//  3. Sort edges by ascending Weight (sort.SliceStable preserves insertion
//     order among equal weights, making the output deterministic).
//  4. Initialize a fresh dsu.DSU over |V| elements, private to this call.
//  5. Loop over sorted edges: accept each edge whose Union reports a merge,
//     accumulating it into the result and its weight into the total.
//  6. Once the tree has |V|-1 edges, break. After the loop, fewer than
//     |V|-1 edges → ErrNotConnected (no partial forest is returned).
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (*MinimumSpanningTree, error) {
	// 1. Validate that the graph is non-nil.
	if graph == nil {
		return nil, ErrNilGraph
	}

	// An empty graph has a degenerate but well-defined MST: no edges,
	// weight 0. Not an error.
	numVerts := graph.VertexCount()
	if numVerts == 0 {
		return &MinimumSpanningTree{}, nil
	}

	// 2. Collect all edges, skipping self-loops: they never connect two
	//    components and cannot be part of a spanning tree.
	allEdges := graph.Edges() // insertion-ordered copy
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort edges by ascending weight (stable sort ensures deterministic
	//    tie-breaking based on original insertion order).
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize the disjoint-set structure, owned exclusively by this
	//    call and discarded with it.
	uf, err := dsu.New(numVerts)
	if err != nil {
		return nil, err
	}

	// 5. Build the MST by sweeping the sorted edges.
	var (
		mst         = make([]core.Edge, 0, numVerts-1) // accepted edges
		totalWeight int64                              // sum of accepted weights
	)
	for _, e := range edges {
		// Union reports whether the endpoints were in different components;
		// a false return means this edge would close a cycle.
		merged, errU := uf.Union(e.From, e.To)
		if errU != nil {
			// Non-dense vertex indices: caller contract violation.
			return nil, errU
		}
		if !merged {
			continue
		}

		mst = append(mst, e)
		totalWeight += e.Weight
		// A spanning tree has exactly |V|-1 edges; stop scanning early.
		if len(mst) == numVerts-1 {
			break
		}
	}

	// 6. Fewer than |V|-1 accepted edges means the sweep ran out of edges
	//    before connecting everything: the graph is disconnected.
	if len(mst) < numVerts-1 {
		return nil, ErrNotConnected
	}

	return &MinimumSpanningTree{edges: mst, weight: totalWeight}, nil
}
