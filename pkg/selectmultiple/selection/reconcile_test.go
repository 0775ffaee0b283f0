package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func selectedFlags(rows []Row) []bool {
	flags := make([]bool, len(rows))
	for i, r := range rows {
		flags[i] = r.Selected
	}
	return flags
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want Entry
	}{
		{"label", Label("Apple"), Entry{Content: "Apple", ID: NewID("Apple")}},
		{"record", Record("Apple", 1), Entry{Content: "Apple", ID: NewID(1)}},
		{"missing id", Entry{Content: "Apple"}, Entry{Content: "Apple"}},
		{"nil item", nil, Entry{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.item))
		})
	}
}

func TestIDEqual(t *testing.T) {
	require.True(t, NewID("A").Equal(NewID("A")))
	require.True(t, NewID(1).Equal(NewID(1)))
	require.False(t, NewID(1).Equal(NewID("1")))
	require.True(t, NewID([]int{1, 2}).Equal(NewID([]int{1, 2})))
	require.False(t, ID{}.Equal(ID{}))
	require.False(t, NewID(nil).Equal(NewID("A")))
}

type compositeID struct {
	Parts any
}

func TestIDEqualComposite(t *testing.T) {
	ab := NewID(compositeID{Parts: []string{"a", "b"}})

	require.True(t, ab.Equal(NewID(compositeID{Parts: []string{"a", "b"}})))
	require.False(t, ab.Equal(NewID(compositeID{Parts: []string{"a"}})))
	require.False(t, ab.Equal(NewID(compositeID{Parts: "ab"})))
	require.True(t, NewID(compositeID{Parts: "ab"}).Equal(NewID(compositeID{Parts: "ab"})))

	items := []Item{Record("AB", compositeID{Parts: []string{"a", "b"}}), Label("C")}
	rows := Reconcile(items, []Item{Record("AB", compositeID{Parts: []string{"a", "b"}})})
	require.Equal(t, []bool{true, false}, selectedFlags(rows))

	next, _ := Toggle([]Item{items[0]}, rows[0])
	require.NotNil(t, next)
	require.Empty(t, next)
}

func TestIDEqualAcrossNumericTypes(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{1, int64(1), true},
		{uint8(2), 2, true},
		{float32(1.5), 1.5, true},
		{3.0, 3, true},
		{-1, uint(1), false},
		{uint64(math.MaxUint64), int64(-1), false},
		{1, "1", false},
		{1, 2, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NewID(tt.a).Equal(NewID(tt.b)), "%T(%v) vs %T(%v)", tt.a, tt.a, tt.b, tt.b)
		if tt.want {
			require.Equal(t, NewID(tt.a).Key(), NewID(tt.b).Key())
		}
	}

	rows := Reconcile([]Item{Record("Apple", int64(1))}, []Item{Record("Apple", 1)})
	require.True(t, rows[0].Selected)
}

func TestReconcileScenario(t *testing.T) {
	rows := Reconcile(Labels("A", "B", "C"), Labels("B"))

	require.Len(t, rows, 3)
	require.Equal(t, []bool{false, true, false}, selectedFlags(rows))
	require.Equal(t, "A", rows[0].Content)
	require.Equal(t, "C", rows[2].Content)
}

func TestReconcilePreservesOrderAndLength(t *testing.T) {
	items := []Item{
		Record("Zebra", 26),
		Label("apple"),
		Record("Mango", 13),
		Entry{Content: "no id"},
	}
	selected := []Item{Record("renamed", 13), Label("apple"), Entry{Content: "no id"}}

	rows := Reconcile(items, selected)

	require.Len(t, rows, len(items))
	for i, item := range items {
		require.Equal(t, Normalize(item), rows[i].Entry)
	}
	require.Equal(t, []bool{false, true, true, false}, selectedFlags(rows))
}

func TestReconcileIsIdempotent(t *testing.T) {
	items := Labels("A", "B", "C", "D")
	selected := []Item{Label("D"), Record("B", "B")}

	require.Equal(t, Reconcile(items, selected), Reconcile(items, selected))
}

func TestReconcileEmpty(t *testing.T) {
	require.Empty(t, Reconcile(nil, Labels("A")))
	require.Equal(t, []bool{false, false}, selectedFlags(Reconcile(Labels("A", "B"), nil)))
}

func TestToggleOn(t *testing.T) {
	selected := Labels("B")
	rows := Reconcile(Labels("A", "B", "C"), selected)

	next, toggled := Toggle(selected, rows[0])

	require.Equal(t, []Entry{Record("B", "B"), Record("A", "A")}, next)
	require.Equal(t, Record("A", "A"), toggled)
	require.Equal(t, Labels("B"), selected)
}

func TestToggleOff(t *testing.T) {
	selected := []Item{Record("X", 1)}
	rows := Reconcile([]Item{Record("X", 1)}, selected)

	next, toggled := Toggle(selected, rows[0])

	require.Empty(t, next)
	require.NotNil(t, next)
	require.Equal(t, Record("X", 1), toggled)
}

func TestToggleOffKeepsOthers(t *testing.T) {
	selected := []Item{Label("A"), Record("B", "b"), Label("C")}

	next, _ := Toggle(selected, Row{Entry: Record("B", "b"), Selected: true})

	require.Equal(t, []Entry{Record("A", "A"), Record("C", "C")}, next)
}

func TestToggleOffDropsDuplicates(t *testing.T) {
	selected := []Item{Label("A"), Label("A"), Label("B")}

	next, _ := Toggle(selected, Row{Entry: Record("A", "A")})

	require.Equal(t, []Entry{Record("B", "B")}, next)
}

func TestToggleMissingIDAlwaysAppends(t *testing.T) {
	row := Row{Entry: Entry{Content: "ghost"}}
	selected := []Item{Entry{Content: "ghost"}}

	next, _ := Toggle(selected, row)

	require.Len(t, next, 2)
}

func TestToggleRoundTrip(t *testing.T) {
	items := Labels("A", "B", "C")
	var selected []Item

	for _, i := range []int{2, 0, 2} {
		rows := Reconcile(items, selected)
		next, _ := Toggle(selected, rows[i])
		selected = Items(next)
	}

	require.Equal(t, []bool{true, false, false}, selectedFlags(Reconcile(items, selected)))
}

func TestContains(t *testing.T) {
	selected := []Item{Label("A"), Record("B", 2)}

	require.True(t, Contains(selected, NewID("A")))
	require.True(t, Contains(selected, NewID(2)))
	require.False(t, Contains(selected, NewID("B")))
	require.False(t, Contains(selected, ID{}))
}

func TestDiff(t *testing.T) {
	prev := Reconcile(Labels("A", "B", "C"), Labels("B"))
	next := Reconcile(Labels("A", "B", "D", "E"), Labels("A", "B"))

	require.Equal(t, []int{0, 2, 3}, Diff(prev, next))
	require.Empty(t, Diff(next, next))
	require.Nil(t, Diff(prev, nil))
}

func TestEntryText(t *testing.T) {
	require.Equal(t, "Apple", Record("Apple", 1).Text())
	require.Equal(t, "42", Record(42, 1).Text())
	require.Equal(t, "", Entry{}.Text())
	require.Equal(t, "2", NewID(2).String())
	require.Equal(t, "number:2", NewID(2).Key())
	require.Equal(t, "string:A", NewID("A").Key())
}
