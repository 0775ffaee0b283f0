package internal

import (
	"image/color"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the toolkit.
// Colors are typically loaded from CFW theme files (Cannoli).
type Theme struct {
	HighlightColor       sdl.Color // Selected row background, footer button background
	AccentColor          sdl.Color // Focus ring, footer pills
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on highlighted rows
	HintColor            sdl.Color // Help text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the toolkit.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// Sheet maps the theme onto the SelectMultiple style slots. It sits between
// the component defaults and the caller's styles.
func (t Theme) Sheet() style.Sheet {
	return style.Sheet{
		Label:         style.Style{TextColor: style.Color(toRGBA(t.TextColor))},
		SelectedRow:   style.Style{BackgroundColor: style.Color(toRGBA(t.HighlightColor))},
		SelectedLabel: style.Style{TextColor: style.Color(toRGBA(t.HighlightedTextColor))},
		SelectedCheckbox: style.Style{
			Tint: style.Color(toRGBA(t.AccentColor)),
		},
	}
}

func toRGBA(c sdl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
