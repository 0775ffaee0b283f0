// Package viewport holds the scrolling arithmetic shared by list
// components: which rows are on screen, which row has focus, and which row
// a tap landed on.
package viewport

// Viewport is the visible window over a list of Count rows.
type Viewport struct {
	Count      int
	Focus      int
	Start      int
	MaxVisible int
}

// New returns a viewport focused on the first row.
func New(count, maxVisible int) Viewport {
	v := Viewport{Count: count, MaxVisible: maxVisible}
	v.clamp()
	return v
}

// SetCount changes the number of rows, keeping focus and start in range.
func (v *Viewport) SetCount(count int) {
	v.Count = count
	v.clamp()
}

// SetMaxVisible changes how many rows fit on screen.
func (v *Viewport) SetMaxVisible(maxVisible int) {
	v.MaxVisible = maxVisible
	v.clamp()
}

// Move shifts focus by one row in direction, wrapping at both ends.
func (v *Viewport) Move(direction int) {
	if v.Count == 0 || direction == 0 {
		return
	}

	if direction > 0 {
		v.Focus++
		if v.Focus >= v.Count {
			v.Focus = 0
			v.Start = 0
		}
	} else {
		v.Focus--
		if v.Focus < 0 {
			v.Focus = v.Count - 1
			v.Start = v.maxStart()
		}
	}

	v.ScrollTo(v.Focus)
}

// Page shifts focus by a screenful without wrapping.
func (v *Viewport) Page(direction int) {
	if v.Count == 0 || direction == 0 {
		return
	}

	step := v.visibleRows()
	if direction < 0 {
		step = -step
	}
	v.FocusOn(v.Focus + step)
}

// FocusOn moves focus to index, clamped to the list, and scrolls to it.
func (v *Viewport) FocusOn(index int) {
	if v.Count == 0 {
		return
	}
	v.Focus = clampInt(index, 0, v.Count-1)
	v.ScrollTo(v.Focus)
}

// ScrollTo positions the window so index is visible with a few rows of
// context above it.
func (v *Viewport) ScrollTo(index int) {
	if index < 0 || index >= v.Count {
		return
	}

	context := v.visibleRows() / 4
	if context < 1 {
		context = 1
	}

	v.Start = clampInt(index-context, 0, v.maxStart())
}

// Visible returns the half-open range of rows on screen.
func (v Viewport) Visible() (start, end int) {
	end = v.Start + v.visibleRows()
	if end > v.Count {
		end = v.Count
	}
	return v.Start, end
}

// IsVisible reports whether index is on screen.
func (v Viewport) IsVisible(index int) bool {
	start, end := v.Visible()
	return index >= start && index < end
}

func (v Viewport) visibleRows() int {
	if v.MaxVisible < 1 {
		return 1
	}
	return v.MaxVisible
}

func (v Viewport) maxStart() int {
	m := v.Count - v.visibleRows()
	if m < 0 {
		return 0
	}
	return m
}

func (v *Viewport) clamp() {
	if v.Count <= 0 {
		v.Count, v.Focus, v.Start = 0, 0, 0
		return
	}
	v.Focus = clampInt(v.Focus, 0, v.Count-1)
	v.Start = clampInt(v.Start, 0, v.maxStart())
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
