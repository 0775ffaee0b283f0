package viewport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveWraps(t *testing.T) {
	v := New(10, 4)

	v.Move(-1)
	require.Equal(t, 9, v.Focus)
	require.Equal(t, 6, v.Start)

	v.Move(1)
	require.Equal(t, 0, v.Focus)
	require.Equal(t, 0, v.Start)
}

func TestMoveKeepsContext(t *testing.T) {
	v := New(20, 8)
	for i := 0; i < 5; i++ {
		v.Move(1)
	}

	require.Equal(t, 5, v.Focus)
	require.Equal(t, 3, v.Start)
	require.True(t, v.IsVisible(5))
}

func TestScrollToClampsAtEnd(t *testing.T) {
	v := New(10, 4)
	v.ScrollTo(9)

	start, end := v.Visible()
	require.Equal(t, 6, start)
	require.Equal(t, 10, end)
}

func TestPage(t *testing.T) {
	v := New(10, 4)

	v.Page(1)
	require.Equal(t, 4, v.Focus)

	v.Page(1)
	v.Page(1)
	require.Equal(t, 9, v.Focus)

	v.Page(-1)
	require.Equal(t, 5, v.Focus)
}

func TestEmpty(t *testing.T) {
	v := New(0, 4)
	v.Move(1)
	v.Page(1)
	v.FocusOn(3)

	start, end := v.Visible()
	require.Equal(t, 0, v.Focus)
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)
}

func TestSetCountClamps(t *testing.T) {
	v := New(10, 4)
	v.FocusOn(9)

	v.SetCount(3)
	require.Equal(t, 2, v.Focus)
	require.Equal(t, 0, v.Start)
}

func TestShortListShowsEverything(t *testing.T) {
	v := New(3, 8)
	v.Move(-1)

	start, end := v.Visible()
	require.Equal(t, 2, v.Focus)
	require.Equal(t, 0, start)
	require.Equal(t, 3, end)
}

func TestHitMap(t *testing.T) {
	var h HitMap
	h.Add(Region{Index: 4, X: 10, Y: 100, W: 200, H: 50})
	h.Add(Region{Index: 5, X: 10, Y: 150, W: 200, H: 50})

	i, ok := h.At(50, 120)
	require.True(t, ok)
	require.Equal(t, 4, i)

	i, ok = h.At(50, 150)
	require.True(t, ok)
	require.Equal(t, 5, i)

	_, ok = h.At(5, 120)
	require.False(t, ok)

	h.Reset()
	_, ok = h.At(50, 120)
	require.False(t, ok)
	require.Empty(t, h.Regions())
}
