package internal

import (
	"image/color"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ToSDLColor converts a style colour to an sdl.Color.
func ToSDLColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// GetScaleFactor returns how much larger the window is than the 480px tall
// reference layout. Sizes in styles are written for the reference layout.
func GetScaleFactor() float32 {
	if window == nil {
		return 1
	}
	h := window.GetHeight()
	if h <= 0 {
		return 1
	}
	scale := float32(h) / float32(constants.ReferenceScreenHeight)
	if scale < 1 {
		return 1
	}
	return scale
}

// Scale multiplies an unscaled size by the current scale factor.
func Scale(v int32) int32 {
	return int32(float32(v) * GetScaleFactor())
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// DrawRoundedRect fills rect with color, rounding each corner by radius.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, c sdl.Color) {
	if rect == nil || rect.W <= 0 || rect.H <= 0 || c.A == 0 {
		return
	}

	radius = Min32(radius, Min32(rect.W, rect.H)/2)

	r, g, b, a, _ := renderer.GetDrawColor()
	defer renderer.SetDrawColor(r, g, b, a)

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)

	if radius <= 0 {
		renderer.FillRect(rect)
		return
	}

	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	// Top and bottom bands, one scanline at a time so the corners are round.
	for dy := int32(0); dy < radius; dy++ {
		inset := radius - circleSpan(radius, radius-dy)
		w := rect.W - 2*inset
		if w <= 0 {
			continue
		}
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: w, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + rect.H - 1 - dy, W: w, H: 1})
	}
}

// DrawRoundedOutline strokes a rounded rectangle with the given thickness.
func DrawRoundedOutline(renderer *sdl.Renderer, rect *sdl.Rect, radius, thickness int32, c sdl.Color) {
	if rect == nil || thickness <= 0 || c.A == 0 {
		return
	}

	r, g, b, a, _ := renderer.GetDrawColor()
	defer renderer.SetDrawColor(r, g, b, a)

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)

	radius = Min32(radius, Min32(rect.W, rect.H)/2)

	for dy := int32(0); dy < rect.H; dy++ {
		var inset int32
		switch {
		case dy < radius:
			inset = radius - circleSpan(radius, radius-dy)
		case dy >= rect.H-radius:
			inset = radius - circleSpan(radius, dy-(rect.H-radius)+1)
		}

		if dy < thickness || dy >= rect.H-thickness {
			renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: rect.W - 2*inset, H: 1})
			continue
		}
		renderer.FillRect(&sdl.Rect{X: rect.X + inset, Y: rect.Y + dy, W: thickness, H: 1})
		renderer.FillRect(&sdl.Rect{X: rect.X + rect.W - inset - thickness, Y: rect.Y + dy, W: thickness, H: 1})
	}
}

// circleSpan is the horizontal half-width of a circle of radius r at
// vertical distance d from its centre.
func circleSpan(r, d int32) int32 {
	if d >= r {
		return 0
	}
	x := int32(0)
	for (x+1)*(x+1)+d*d <= r*r {
		x++
	}
	return x
}
