package selection_test

import (
	"fmt"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
)

// Example shows the controlled loop: the owner keeps the selection, the
// rows are derived from it, and a toggle only proposes the next selection.
func Example() {
	items := selection.Labels("A", "B", "C")
	selected := selection.Labels("B")

	rows := selection.Reconcile(items, selected)
	for _, row := range rows {
		fmt.Printf("%s %v\n", row.Text(), row.Selected)
	}

	next, toggled := selection.Toggle(selected, rows[0])
	fmt.Printf("toggled %s\n", toggled.Text())
	for _, e := range next {
		fmt.Printf("selected %s\n", e.Text())
	}

	// Output:
	// A false
	// B true
	// C false
	// toggled A
	// selected B
	// selected A
}
