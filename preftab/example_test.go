package preftab_test

import (
	"fmt"

	"github.com/katalvlaran/stablematch/preftab"
)

// Build a four-participant table, delete one mutual pair and inspect the
// surviving lists. Deletion is always symmetric: removing 2 from 0's list
// removes 0 from 2's list in the same step.
func ExampleTable_RemoveSymmetric() {
	tab, err := preftab.New([][]int{
		{1, 2, 3},
		{2, 0, 3},
		{0, 1, 3},
		{0, 1, 2},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	tab.RemoveSymmetric(0, 2)

	fmt.Println(tab.Remaining(0))
	fmt.Println(tab.Remaining(2))
	// Output:
	// [1 3]
	// [1 3]
}
