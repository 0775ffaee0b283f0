package selectmultiple

import (
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal/locale"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is one button hint in a screen footer.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

func defaultSelectFooter(l *locale.Localizer, disableBack bool) []FooterHelpItem {
	items := []FooterHelpItem{}
	if !disableBack {
		items = append(items, FooterHelpItem{ButtonName: "B", HelpText: l.T(locale.Back)})
	}
	return append(items,
		FooterHelpItem{ButtonName: "A", HelpText: l.T(locale.Toggle)},
		FooterHelpItem{ButtonName: "Start", HelpText: l.T(locale.Done)},
	)
}

// footerHeight is the space renderFooter uses, including its margin.
func footerHeight(font *ttf.Font, bottomMargin int32) int32 {
	if font == nil {
		return 0
	}
	return int32(font.Height()) + internal.Scale(16) + bottomMargin
}

// renderFooter draws button hints along the bottom edge. With spread the
// first half of the items sits on the left and the rest on the right;
// otherwise everything is left aligned.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomMargin int32, transparent, spread bool) {
	if font == nil || len(items) == 0 {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	width := window.GetWidth()
	height := footerHeight(font, bottomMargin)
	y := window.GetHeight() - height

	if !transparent {
		bg := theme.BackgroundColor
		renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
		renderer.FillRect(&sdl.Rect{X: 0, Y: y, W: width, H: height})
	}

	margin := internal.Scale(20)
	split := len(items)
	if spread {
		split = (len(items) + 1) / 2
	}

	x := margin
	for _, item := range items[:split] {
		x += renderHelpItem(renderer, font, item, x, y) + margin
	}

	x = width - margin
	right := items[split:]
	for i := len(right) - 1; i >= 0; i-- {
		x -= helpItemWidth(font, right[i])
		renderHelpItem(renderer, font, right[i], x, y)
		x -= margin
	}
}

func helpItemWidth(font *ttf.Font, item FooterHelpItem) int32 {
	pad := internal.Scale(8)
	return internal.TextWidth(font, item.ButtonName) + 2*pad + pad + internal.TextWidth(font, item.HelpText)
}

// renderHelpItem draws a button pill followed by its help text and returns
// the width used.
func renderHelpItem(renderer *sdl.Renderer, font *ttf.Font, item FooterHelpItem, x, y int32) int32 {
	theme := internal.GetTheme()
	pad := internal.Scale(8)
	h := int32(font.Height()) + pad

	pill := sdl.Rect{X: x, Y: y, W: internal.TextWidth(font, item.ButtonName) + 2*pad, H: h}
	internal.DrawRoundedRect(renderer, &pill, h/2, theme.AccentColor)
	internal.RenderText(renderer, font, item.ButtonName, x+pad, y+pad/2, theme.ButtonLabelColor)

	internal.RenderText(renderer, font, item.HelpText, pill.X+pill.W+pad, y+pad/2, theme.HintColor)
	return helpItemWidth(font, item)
}
