package internal

import (
	"strings"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const ellipsis = "..."

// TextWidth measures text in font, returning 0 on failure.
func TextWidth(font *ttf.Font, text string) int32 {
	if font == nil || text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// WrapText breaks text into at most maxLines lines no wider than maxWidth.
// When the text does not fit, the last line ends in an ellipsis.
// maxLines <= 0 means unlimited.
func WrapText(font *ttf.Font, text string, maxWidth int32, maxLines int) []string {
	return wrapWith(func(s string) int32 { return TextWidth(font, s) }, text, maxWidth, maxLines)
}

func wrapWith(measure func(string) int32, text string, maxWidth int32, maxLines int) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if measure(candidate) <= maxWidth || current == "" {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}

	if maxLines > 0 && len(lines) > maxLines {
		last := lines[maxLines-1] + " " + strings.Join(lines[maxLines:], " ")
		lines = lines[:maxLines]
		lines[maxLines-1] = truncateWith(measure, last, maxWidth, true)
	}

	for i, line := range lines {
		lines[i] = truncateWith(measure, line, maxWidth, false)
	}
	return lines
}

// TruncateText shortens text with an ellipsis until it fits maxWidth.
func TruncateText(font *ttf.Font, text string, maxWidth int32) string {
	return truncateWith(func(s string) int32 { return TextWidth(font, s) }, text, maxWidth, false)
}

func truncateWith(measure func(string) int32, text string, maxWidth int32, force bool) string {
	if !force && measure(text) <= maxWidth {
		return text
	}
	if strings.HasSuffix(text, ellipsis) && measure(text) <= maxWidth {
		return text
	}

	runes := []rune(strings.TrimRight(text, " "))
	for len(runes) > 0 {
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return ellipsis
}

// RenderText draws a single line of text and returns its size.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// LineHeight is the vertical advance between wrapped lines.
func LineHeight(font *ttf.Font) int32 {
	if font == nil {
		return 0
	}
	h := int32(font.Height())
	return h + h/5
}

// RenderMultilineText wraps and draws text. x is the left edge, centre or
// right edge depending on align. It returns the height drawn.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if font == nil {
		return 0
	}

	lines := WrapText(font, text, maxWidth, 0)
	lineHeight := LineHeight(font)

	for i, line := range lines {
		lineX := x
		switch align {
		case constants.TextAlignCenter:
			lineX = x - TextWidth(font, line)/2
		case constants.TextAlignRight:
			lineX = x - TextWidth(font, line)
		}
		RenderText(renderer, font, line, lineX, y+int32(i)*lineHeight, color)
	}

	return int32(len(lines)) * lineHeight
}

// MultilineTextHeight is the height RenderMultilineText would use.
func MultilineTextHeight(text string, font *ttf.Font, maxWidth int32) int32 {
	if font == nil || text == "" {
		return 0
	}
	return int32(len(WrapText(font, text, maxWidth, 0))) * LineHeight(font)
}
