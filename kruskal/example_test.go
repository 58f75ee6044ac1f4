package kruskal_test

import (
	"fmt"

	"github.com/kvistgo/spantree/core"
	"github.com/kvistgo/spantree/kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph:
// 0—1 (1), 1—2 (2), 0—2 (4). The MST is {0—1, 1—2} with total weight 3.
func ExampleKruskal() {
	// 1. Construct the triangle graph.
	g := core.NewGraph()
	g.AddEdge(0, 1, 1) // 0—1 with weight 1
	g.AddEdge(1, 2, 2) // 1—2 with weight 2
	g.AddEdge(0, 2, 4) // 0—2 with weight 4

	// 2. Run Kruskal's algorithm.
	mst, err := kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the accepted edges in order.
	fmt.Printf("Total: %d, Edges: ", mst.Weight())
	for i, e := range mst.Edges() {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	// Output: Total: 3, Edges: 0-1 1-2
}

// ExampleKruskal_duplicateRecords demonstrates that listing both directions
// of the same undirected connection as separate records does not change the
// result: connectivity tracking suppresses the second record's effect.
func ExampleKruskal_duplicateRecords() {
	g := core.NewGraph()
	g.AddEdge(0, 1, 4)
	g.AddEdge(1, 0, 4) // reverse record of the same connection
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 1, 2) // reverse record of the same connection

	mst, err := kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(mst)
	// Output: Minimum spanning tree has total weight of 6 and has the following edges [[from:1, to:2, weight:2], [from:0, to:1, weight:4]]
}

// ExampleKruskal_errNotConnected demonstrates the explicit disconnection
// error: two separate components cannot yield a spanning tree.
func ExampleKruskal_errNotConnected() {
	g := core.NewGraph()
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 1) // second component

	_, err := kruskal.Kruskal(g)
	fmt.Println(err)
	// Output: kruskal: graph is not connected
}

// ExampleKruskal_emptyGraph demonstrates that an empty graph is not an
// error: the MST is empty with zero weight.
func ExampleKruskal_emptyGraph() {
	mst, err := kruskal.Kruskal(core.NewGraph())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("edges: %d, weight: %d\n", mst.Len(), mst.Weight())
	// Output: edges: 0, weight: 0
}
