// Package selection holds the state-free core of the SelectMultiple component.
//
// Nothing in this package owns selection state. Callers pass the full item
// collection and the currently selected subset, and get back annotated rows
// or a new candidate selection. The component and the terminal front end are
// thin adapters over these functions.
package selection

import "fmt"

// Item is a source record shown as one row. It is either a Label (a bare
// string used as both content and id) or an Entry (structured content with
// an explicit id).
type Item interface {
	normalize() Entry
}

// Label is a plain text item. Its text is both its content and its id.
type Label string

func (l Label) normalize() Entry {
	return Entry{Content: string(l), ID: NewID(string(l))}
}

// Entry is the canonical {content, id} form of an Item. Entries are also
// valid Items, so an emitted selection can be handed straight back.
type Entry struct {
	Content any
	ID      ID
}

// Record builds an Entry from arbitrary content and id values.
func Record(content, id any) Entry {
	return Entry{Content: content, ID: NewID(id)}
}

func (e Entry) normalize() Entry {
	return Entry{Content: e.Content, ID: e.ID}
}

// Text returns the content formatted for display.
func (e Entry) Text() string {
	switch c := e.Content.(type) {
	case nil:
		return ""
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// Row is an Entry annotated with whether it is part of the selection.
type Row struct {
	Entry
	Selected bool
}

// Normalize converts any Item into its Entry form. A nil item yields an
// Entry with no id, which never matches anything.
func Normalize(item Item) Entry {
	if item == nil {
		return Entry{}
	}
	return item.normalize()
}

// NormalizeAll normalizes every item, preserving order.
func NormalizeAll(items []Item) []Entry {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Normalize(item)
	}
	return entries
}

// Items widens entries back to Items.
func Items(entries []Entry) []Item {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return items
}

// Labels builds Label items from plain strings.
func Labels(texts ...string) []Item {
	items := make([]Item, len(texts))
	for i, t := range texts {
		items[i] = Label(t)
	}
	return items
}
