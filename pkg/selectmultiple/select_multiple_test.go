package selectmultiple

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	"github.com/stretchr/testify/require"
)

// owner keeps the selection the way a host application would.
type owner struct {
	sm       *SelectMultiple
	props    Props
	selected []selection.Entry
	toggled  []selection.Entry
}

func newOwner(t *testing.T, items []selection.Item) *owner {
	t.Helper()

	o := &owner{}
	o.props = Props{
		Items: items,
		OnSelectionsChange: func(next []selection.Entry, toggled selection.Entry) {
			o.selected = next
			o.toggled = append(o.toggled, toggled)
			o.props.SelectedItems = selection.Items(next)
			require.NoError(t, o.sm.SetProps(o.props))
		},
		ListViewProps: ListSettings{InputDelay: time.Nanosecond},
	}

	sm, err := New(o.props)
	require.NoError(t, err)
	o.sm = sm
	return o
}

func selectedFlags(rows []selection.Row) []bool {
	flags := make([]bool, len(rows))
	for i, r := range rows {
		flags[i] = r.Selected
	}
	return flags
}

func TestNewValidatesProps(t *testing.T) {
	_, err := New(Props{OnSelectionsChange: func([]selection.Entry, selection.Entry) {}})
	require.ErrorIs(t, err, ErrMissingItems)

	_, err = New(Props{Items: selection.Labels("A")})
	require.ErrorIs(t, err, ErrMissingCallback)

	sm, err := New(Props{Items: []selection.Item{}, OnSelectionsChange: func([]selection.Entry, selection.Entry) {}})
	require.NoError(t, err)
	require.Empty(t, sm.Rows())
}

func TestSetPropsRejectsInvalidProps(t *testing.T) {
	o := newOwner(t, selection.Labels("A"))

	err := o.sm.SetProps(Props{Items: selection.Labels("B")})
	require.ErrorIs(t, err, ErrMissingCallback)
	require.Equal(t, "A", o.sm.Rows()[0].Text())
}

func TestToggleWithButtons(t *testing.T) {
	o := newOwner(t, selection.Labels("Apple", "Banana", "Cherry"))

	require.Equal(t, ActionToggled, o.sm.handleButton(constants.VirtualButtonA, true))
	require.Equal(t, []selection.Entry{selection.Record("Apple", "Apple")}, o.selected)

	require.Equal(t, ActionNone, o.sm.handleButton(constants.VirtualButtonDown, true))
	require.Equal(t, ActionNone, o.sm.handleButton(constants.VirtualButtonDown, false))
	require.Equal(t, 1, o.sm.Focus())

	require.Equal(t, ActionToggled, o.sm.handleButton(constants.VirtualButtonA, true))
	require.Equal(t, []bool{true, true, false}, selectedFlags(o.sm.Rows()))

	require.Equal(t, ActionNone, o.sm.handleButton(constants.VirtualButtonUp, true))
	require.Equal(t, ActionToggled, o.sm.handleButton(constants.VirtualButtonA, true))
	require.Equal(t, []selection.Entry{selection.Record("Banana", "Banana")}, o.selected)
	require.Equal(t, []bool{false, true, false}, selectedFlags(o.sm.Rows()))

	require.Len(t, o.toggled, 3)
	require.Equal(t, "Apple", o.toggled[2].Text())
}

func TestOwnerDecidesSelection(t *testing.T) {
	var calls [][]selection.Entry
	props := Props{
		Items:         selection.Labels("A", "B"),
		SelectedItems: selection.Labels("B"),
		OnSelectionsChange: func(next []selection.Entry, _ selection.Entry) {
			calls = append(calls, next)
		},
	}
	sm, err := New(props)
	require.NoError(t, err)

	require.True(t, sm.Activate(0))
	require.True(t, sm.Activate(0))

	// The owner never re-supplied props, so both toggles start from [B].
	want := []selection.Entry{selection.Record("B", "B"), selection.Record("A", "A")}
	require.Equal(t, [][]selection.Entry{want, want}, calls)
	require.Equal(t, []bool{false, true}, selectedFlags(sm.Rows()))

	require.False(t, sm.Activate(2))
	require.False(t, sm.Activate(-1))
	require.Len(t, calls, 2)
}

func TestStructuredItems(t *testing.T) {
	items := []selection.Item{
		selection.Record("Apple", 1),
		selection.Record("Banana", 2),
	}
	o := newOwner(t, items)
	o.props.SelectedItems = []selection.Item{selection.Record("anything", 2)}
	require.NoError(t, o.sm.SetProps(o.props))
	require.Equal(t, []bool{false, true}, selectedFlags(o.sm.Rows()))

	o.sm.Activate(1)
	require.Empty(t, o.selected)
	require.Equal(t, selection.Record("Banana", 2), o.toggled[0])
}

func TestConfirmAndBack(t *testing.T) {
	o := newOwner(t, selection.Labels("A"))

	require.Equal(t, ActionConfirmed, o.sm.handleButton(constants.VirtualButtonStart, true))
	require.Equal(t, ActionCancelled, o.sm.handleButton(constants.VirtualButtonB, true))
	require.Equal(t, ActionNone, o.sm.handleButton(constants.VirtualButtonStart, false))

	o.props.ListViewProps.ConfirmButton = constants.VirtualButtonX
	o.props.ListViewProps.DisableBackButton = true
	require.NoError(t, o.sm.SetProps(o.props))

	require.Equal(t, ActionConfirmed, o.sm.handleButton(constants.VirtualButtonX, true))
	require.Equal(t, ActionNone, o.sm.handleButton(constants.VirtualButtonStart, true))
	require.Equal(t, ActionNone, o.sm.handleButton(constants.VirtualButtonB, true))
}

func TestListViewPropsOverride(t *testing.T) {
	o := newOwner(t, selection.Labels("A", "B", "C"))
	o.props.RowStyle = style.Style{Spacing: style.Int32(6)}
	o.props.ListViewProps = ListSettings{Title: "Fruit", RowSpacing: 12, InputDelay: time.Second}
	require.NoError(t, o.sm.SetProps(o.props))

	settings := o.sm.list.Settings
	require.Equal(t, "Fruit", settings.Title)
	require.Equal(t, int32(12), settings.RowSpacing)
	require.Equal(t, time.Second, settings.InputDelay)

	o.props.ListViewProps = ListSettings{}
	require.NoError(t, o.sm.SetProps(o.props))
	require.Equal(t, int32(6), o.sm.list.Settings.RowSpacing)
}

func TestInitialFocus(t *testing.T) {
	sm, err := New(Props{
		Items:              selection.Labels("A", "B", "C"),
		OnSelectionsChange: func([]selection.Entry, selection.Entry) {},
		ListViewProps:      ListSettings{InitialFocus: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 2, sm.Focus())
}

func TestPropsSheet(t *testing.T) {
	sheet := style.Sheet{
		Row:           style.Style{Height: style.Int32(80)},
		SelectedLabel: style.Style{TextColor: style.Hex(0x000000)},
	}
	p := Props{}.WithSheet(sheet)

	require.Equal(t, style.Int32(80), p.RowStyle.Height)
	require.Equal(t, sheet, p.Sheet())
}

func TestActionString(t *testing.T) {
	require.Equal(t, "toggled", ActionToggled.String())
	require.Equal(t, "none", Action(99).String())
}
