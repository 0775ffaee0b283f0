package listview

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	"github.com/stretchr/testify/require"
)

func TestMergeKeepsDefaults(t *testing.T) {
	got := DefaultSettings().Merge(Settings{Title: "Fruit"})

	require.Equal(t, "Fruit", got.Title)
	require.Equal(t, internal.UniformPadding(20), got.Margins)
	require.Equal(t, constants.DefaultInputDelay, got.InputDelay)
	require.Equal(t, -1, got.VisibleStart)
}

func TestMergeOverrides(t *testing.T) {
	got := DefaultSettings().Merge(Settings{
		TitleAlign:   constants.TextAlignCenter,
		InputDelay:   time.Second,
		InitialFocus: 3,
		VisibleStart: 2,
		HideFocus:    true,
	})

	require.Equal(t, constants.TextAlignCenter, got.TitleAlign)
	require.Equal(t, time.Second, got.InputDelay)
	require.Equal(t, 3, got.InitialFocus)
	require.Equal(t, 2, got.VisibleStart)
	require.True(t, got.HideFocus)
}

func TestCacheKey(t *testing.T) {
	lv := &ListView{}

	a := selection.Row{Entry: selection.Record("Apple", 1)}
	b := selection.Row{Entry: selection.Record("Apple", 1), Selected: true}
	missing := selection.Row{Entry: selection.Record("?", nil)}

	require.NotEqual(t, lv.cacheKey(0, a), lv.cacheKey(0, b))
	require.Equal(t, lv.cacheKey(3, a), lv.cacheKey(3, a))
	require.NotEqual(t, lv.cacheKey(0, a), lv.cacheKey(5, a))
	require.NotEqual(t, lv.cacheKey(0, missing), lv.cacheKey(1, missing))
}

func TestSetRowsEvictsChangedAndTrailingRows(t *testing.T) {
	lv := New(DefaultSettings(), style.Style{})
	rows := []selection.Row{
		{Entry: selection.Record("Apple", 1)},
		{Entry: selection.Record("Banana", 2)},
		{Entry: selection.Record("Cherry", 3)},
	}
	lv.SetRows(rows)
	for i, row := range rows {
		lv.cache.Set(lv.cacheKey(i, row), nil)
	}
	require.Equal(t, 3, lv.cache.Len())

	toggled := append([]selection.Row(nil), rows...)
	toggled[1].Selected = true
	require.Equal(t, []int{1}, lv.SetRows(toggled))
	require.Equal(t, 2, lv.cache.Len())

	lv.SetRows(toggled[:1])
	require.Equal(t, 1, lv.cache.Len())
	require.Len(t, lv.Rows(), 1)
}
