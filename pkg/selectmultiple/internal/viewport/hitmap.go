package viewport

// Region is the on-screen rectangle a row was drawn into.
type Region struct {
	Index      int
	X, Y, W, H int32
}

// Contains reports whether the point lies inside the region.
func (r Region) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// HitMap records the regions of the rows drawn in the last frame.
type HitMap struct {
	regions []Region
}

// Reset forgets the previous frame.
func (h *HitMap) Reset() {
	h.regions = h.regions[:0]
}

// Add records a row region.
func (h *HitMap) Add(r Region) {
	h.regions = append(h.regions, r)
}

// Regions returns the recorded regions in drawing order.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// At returns the index of the row under the point.
func (h *HitMap) At(x, y int32) (int, bool) {
	for _, r := range h.regions {
		if r.Contains(x, y) {
			return r.Index, true
		}
	}
	return -1, false
}
