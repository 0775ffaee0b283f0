// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"os"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
// An empty fontPath falls back to FONT_PATH, then to DefaultFontPath.
// BACKGROUND_PATH, when set, is used as the background image.
func InitCannoliTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = os.Getenv(constants.FontPathEnvVar)
	}
	if fontPath == "" {
		fontPath = DefaultFontPath
	}

	return internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0xB4B4B4),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0x000000),
		FontPath:             fontPath,
		BackgroundImagePath:  os.Getenv(constants.BackgroundPathEnvVar),
	}
}
