package internal

import "github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// ScaledPadding converts a style padding to window pixels.
func ScaledPadding(p style.Padding) Padding {
	return Padding{
		Top:    Scale(p.Top),
		Right:  Scale(p.Right),
		Bottom: Scale(p.Bottom),
		Left:   Scale(p.Left),
	}
}

// Horizontal is the sum of the left and right padding.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Vertical is the sum of the top and bottom padding.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}
