// Package core defines the central Graph and Edge types for MST
// computation.
//
// This file declares the Edge value type, sentinel errors, and the Graph
// container with its constructor.
package core

import (
	"errors"
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates an edge endpoint with a negative index.
	// Vertices are dense zero-based indices, so a negative index can never
	// identify a vertex.
	ErrNegativeVertex = errors.New("core: negative vertex index")
)

// Edge represents an undirected weighted connection between two vertices.
//
// From and To are dense zero-based vertex indices; Weight is the cost of
// the connection. Edges are immutable values: the graph stores them
// verbatim, including duplicate and reverse records of the same connection.
type Edge struct {
	// From is one endpoint's vertex index.
	From int

	// To is the other endpoint's vertex index.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// String renders the edge as [from:F, to:T, weight:W].
func (e Edge) String() string {
	return fmt.Sprintf("[from:%d, to:%d, weight:%d]", e.From, e.To, e.Weight)
}

// Graph is the in-memory edge-list graph consumed by the MST builder.
//
// It holds an insertion-ordered edge sequence and the implicit set of
// distinct vertex indices seen so far. mu guards both; see the package doc
// for the locking discipline.
type Graph struct {
	mu sync.RWMutex // guards vertices and edges

	// Storage
	vertices mapset.Set[int] // distinct endpoint indices
	edges    []Edge          // insertion order, stored verbatim
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: mapset.NewThreadUnsafeSet[int](),
	}
}
