package internal

import (
	"os"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for the reference 480px layout. They are scaled
// to the window when the fonts are opened.
type FontSizes struct {
	ExtraLarge int
	Large      int
	Medium     int
	Small      int
}

var DefaultFontSizes = FontSizes{
	ExtraLarge: 34,
	Large:      28,
	Medium:     22,
	Small:      18,
}

type fontSet struct {
	ExtraLargeFont *ttf.Font
	LargeFont      *ttf.Font
	MediumFont     *ttf.Font
	SmallFont      *ttf.Font
}

// Fonts holds the open theme fonts. Any of them may be nil when the font
// file could not be opened; callers skip text in that case.
var Fonts fontSet

func initFonts(sizes FontSizes) {
	path := os.Getenv(constants.FontPathEnvVar)
	if path == "" {
		path = GetTheme().FontPath
	}

	Fonts = fontSet{
		ExtraLargeFont: openFont(path, sizes.ExtraLarge),
		LargeFont:      openFont(path, sizes.Large),
		MediumFont:     openFont(path, sizes.Medium),
		SmallFont:      openFont(path, sizes.Small),
	}
}

func openFont(path string, size int) *ttf.Font {
	scaled := int(float32(size) * GetScaleFactor())
	font, err := ttf.OpenFont(path, scaled)
	if err != nil {
		GetInternalLogger().Error("Failed to open font", "path", path, "size", scaled, "error", err)
		return nil
	}
	return font
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.ExtraLargeFont, Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontSet{}
}

// FontFor maps a style font size to an open font.
func FontFor(size style.FontSize) *ttf.Font {
	switch size {
	case style.FontSizeLarge:
		return Fonts.LargeFont
	case style.FontSizeMedium:
		return Fonts.MediumFont
	default:
		return Fonts.SmallFont
	}
}
