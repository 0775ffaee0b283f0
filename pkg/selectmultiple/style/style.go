// Package style describes how SelectMultiple rows look.
//
// A Style is a set of optional properties. Styles are layered with Merge:
// later layers override earlier ones one property at a time, and unset
// properties fall through.
package style

import "image/color"

// FontSize selects one of the toolkit's font sizes.
type FontSize int

const (
	FontSizeSmall FontSize = iota
	FontSizeMedium
	FontSizeLarge
)

// Padding is spacing on each side of a box, in unscaled pixels.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// Style is a mergeable style descriptor. Nil fields are unset.
type Style struct {
	BackgroundColor *color.RGBA
	TextColor       *color.RGBA
	Tint            *color.RGBA // Colour modulation applied to images
	Padding         *Padding
	Height          *int32
	Width           *int32
	CornerRadius    *int32
	Spacing         *int32 // Gap after the element (checkbox to label, row to row)
	FontSize        *FontSize
	MaxLines        *int
}

// Merge layers styles from first to last. Each set property of a later
// layer replaces the same property of an earlier one.
func Merge(layers ...Style) Style {
	var out Style
	for _, l := range layers {
		out = out.With(l)
	}
	return out
}

// With returns s overridden by every property set in over.
func (s Style) With(over Style) Style {
	if over.BackgroundColor != nil {
		s.BackgroundColor = over.BackgroundColor
	}
	if over.TextColor != nil {
		s.TextColor = over.TextColor
	}
	if over.Tint != nil {
		s.Tint = over.Tint
	}
	if over.Padding != nil {
		s.Padding = over.Padding
	}
	if over.Height != nil {
		s.Height = over.Height
	}
	if over.Width != nil {
		s.Width = over.Width
	}
	if over.CornerRadius != nil {
		s.CornerRadius = over.CornerRadius
	}
	if over.Spacing != nil {
		s.Spacing = over.Spacing
	}
	if over.FontSize != nil {
		s.FontSize = over.FontSize
	}
	if over.MaxLines != nil {
		s.MaxLines = over.MaxLines
	}
	return s
}

// Resolve applies base, then override, then selectedOverride when selected.
func Resolve(base, override, selectedOverride Style, selected bool) Style {
	if selected {
		return Merge(base, override, selectedOverride)
	}
	return Merge(base, override)
}

// IsZero reports whether no property is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Getters with fallbacks, used by renderers.

func (s Style) BackgroundOr(def color.RGBA) color.RGBA {
	if s.BackgroundColor == nil {
		return def
	}
	return *s.BackgroundColor
}

func (s Style) TextColorOr(def color.RGBA) color.RGBA {
	if s.TextColor == nil {
		return def
	}
	return *s.TextColor
}

func (s Style) TintOr(def color.RGBA) color.RGBA {
	if s.Tint == nil {
		return def
	}
	return *s.Tint
}

func (s Style) PaddingOr(def Padding) Padding {
	if s.Padding == nil {
		return def
	}
	return *s.Padding
}

func (s Style) HeightOr(def int32) int32 {
	if s.Height == nil {
		return def
	}
	return *s.Height
}

func (s Style) WidthOr(def int32) int32 {
	if s.Width == nil {
		return def
	}
	return *s.Width
}

func (s Style) CornerRadiusOr(def int32) int32 {
	if s.CornerRadius == nil {
		return def
	}
	return *s.CornerRadius
}

func (s Style) SpacingOr(def int32) int32 {
	if s.Spacing == nil {
		return def
	}
	return *s.Spacing
}

func (s Style) FontSizeOr(def FontSize) FontSize {
	if s.FontSize == nil {
		return def
	}
	return *s.FontSize
}

func (s Style) MaxLinesOr(def int) int {
	if s.MaxLines == nil {
		return def
	}
	return *s.MaxLines
}

// Constructors for literal styles.

func Color(c color.RGBA) *color.RGBA { return &c }

func Hex(rgb uint32) *color.RGBA {
	c := color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}
	return &c
}

func Int32(v int32) *int32 { return &v }

func Int(v int) *int { return &v }

func Size(v FontSize) *FontSize { return &v }

func Uniform(v int32) *Padding {
	return &Padding{Top: v, Right: v, Bottom: v, Left: v}
}
