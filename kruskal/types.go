// Package kruskal defines sentinel errors and the immutable
// MinimumSpanningTree result type.
package kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kvistgo/spantree/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Kruskal.
var ErrNilGraph = errors.New("kruskal: graph is nil")

// ErrNotConnected indicates that the graph has more than one connected
// component, so no spanning tree can cover all vertices. It applies when
// |V| > 1 but fewer than |V|-1 acyclic edges exist.
var ErrNotConnected = errors.New("kruskal: graph is not connected")

// MinimumSpanningTree is the immutable result of a Kruskal run: the
// accepted edges in acceptance order and their total weight.
//
// It is created exactly once per successful Kruskal call and never mutated
// afterwards; Edges returns a fresh copy on every call.
type MinimumSpanningTree struct {
	edges  []core.Edge // accepted edges, in acceptance order
	weight int64       // sum of accepted edge weights
}

// Edges returns the selected edges in the order Kruskal accepted them.
// The slice is a fresh copy owned by the caller.
func (t *MinimumSpanningTree) Edges() []core.Edge {
	out := make([]core.Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// Weight returns the total weight of the tree: the sum of the weights of
// the selected edges.
func (t *MinimumSpanningTree) Weight() int64 {
	return t.weight
}

// Len returns the number of selected edges (|V|-1 for a connected input
// with |V| > 0; zero for an empty graph).
func (t *MinimumSpanningTree) Len() int {
	return len(t.edges)
}

// String renders the tree as a single human-readable line:
//
//	Minimum spanning tree has total weight of W and has the following edges [E1, E2, ...]
func (t *MinimumSpanningTree) String() string {
	parts := make([]string, len(t.edges))
	for i, e := range t.edges {
		parts[i] = e.String()
	}

	return fmt.Sprintf(
		"Minimum spanning tree has total weight of %d and has the following edges [%s]",
		t.weight, strings.Join(parts, ", "),
	)
}
