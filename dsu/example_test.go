package dsu_test

import (
	"fmt"

	"github.com/kvistgo/spantree/dsu"
)

// ExampleDSU demonstrates incremental connectivity over six elements:
// merging along edges of two separate chains leaves two distinct sets.
func ExampleDSU() {
	// 1. Six singleton sets: {0} {1} {2} {3} {4} {5}.
	d, err := dsu.New(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Chain 0-1-2 and chain 3-4.
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(3, 4)

	// 3. Query connectivity and the remaining set count.
	same, _ := d.Connected(0, 2)
	apart, _ := d.Connected(2, 3)
	fmt.Printf("0~2: %v, 2~3: %v, sets: %d\n", same, apart, d.Count())
	// Output: 0~2: true, 2~3: false, sets: 3
}

// ExampleDSU_Union demonstrates the merge report: a repeated union over an
// already-connected pair is a no-op returning false.
func ExampleDSU_Union() {
	d, _ := dsu.New(3)

	merged, _ := d.Union(0, 1)
	fmt.Println("first union merged:", merged)

	merged, _ = d.Union(1, 0)
	fmt.Println("second union merged:", merged)
	// Output:
	// first union merged: true
	// second union merged: false
}
