package selection

// Reconcile annotates every item with whether its id appears among the
// selected items. The result has the same length and order as items.
// Both collections are expected to be UI sized, so membership is a
// linear scan per row.
func Reconcile(items, selectedItems []Item) []Row {
	selected := NormalizeAll(selectedItems)

	rows := make([]Row, len(items))
	for i, item := range items {
		entry := Normalize(item)
		rows[i] = Row{
			Entry:    entry,
			Selected: indexOf(selected, entry.ID) > -1,
		}
	}
	return rows
}

// Contains reports whether any selected item normalizes to id.
func Contains(selectedItems []Item, id ID) bool {
	return indexOf(NormalizeAll(selectedItems), id) > -1
}

// Toggle flips the membership of row in the selection. When the row's id is
// already selected every entry with that id is dropped; otherwise the row's
// {content, id} is appended. The input slice is never modified.
func Toggle(selectedItems []Item, row Row) (next []Entry, toggled Entry) {
	toggled = Entry{Content: row.Content, ID: row.ID}
	selected := NormalizeAll(selectedItems)

	if indexOf(selected, row.ID) > -1 {
		next = make([]Entry, 0, len(selected)-1)
		for _, e := range selected {
			if !e.ID.Equal(row.ID) {
				next = append(next, e)
			}
		}
		return next, toggled
	}

	next = make([]Entry, 0, len(selected)+1)
	next = append(next, selected...)
	next = append(next, toggled)
	return next, toggled
}

// RowChanged is the list diff predicate: a row must be redrawn when its id
// or its selected flag differs.
func RowChanged(a, b Row) bool {
	return !a.ID.Equal(b.ID) || a.Selected != b.Selected
}

// Diff returns the indices of next whose row changed relative to the row at
// the same index in prev. Rows beyond the end of prev are always changed.
func Diff(prev, next []Row) []int {
	var changed []int
	for i, row := range next {
		if i >= len(prev) || RowChanged(prev[i], row) {
			changed = append(changed, i)
		}
	}
	return changed
}

func indexOf(entries []Entry, id ID) int {
	for i, e := range entries {
		if e.ID.Equal(id) {
			return i
		}
	}
	return -1
}
