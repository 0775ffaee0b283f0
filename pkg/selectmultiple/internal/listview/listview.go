// Package listview draws a scrolling list of selection rows. It owns
// focus, scrolling, hit-testing and a texture cache of rendered rows; what a
// row looks like is decided by the caller's RowFunc.
package listview

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal/viewport"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	"github.com/veandco/go-sdl2/sdl"
)

// RowFunc renders one row into a new texture of exactly width x height.
// The list view owns the returned texture.
type RowFunc func(renderer *sdl.Renderer, row selection.Row, width, height int32) (*sdl.Texture, error)

type ListView struct {
	Settings Settings

	rows       []selection.Row
	view       viewport.Viewport
	hits       viewport.HitMap
	cache      *internal.TextureCache
	cacheWidth int32
	container  style.Style
	rowHeight  int32
	repeat     internal.ButtonRepeat
	lastInput  time.Time
}

func New(settings Settings, container style.Style) *ListView {
	lv := &ListView{
		Settings:  settings,
		container: container,
		cache:     internal.NewTextureCacheWithSize(max(settings.CacheSize, 1)),
		repeat:    internal.NewButtonRepeat(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval),
		lastInput: time.Now(),
	}
	lv.view = viewport.New(0, 1)
	return lv
}

// SetRows replaces the data source. Rows whose id or selected flag changed
// lose their cached texture, as do rows past the end of a shorter list; the
// rest are drawn from cache. It returns the indices that changed.
func (lv *ListView) SetRows(rows []selection.Row) []int {
	first := lv.rows == nil
	changed := selection.Diff(lv.rows, rows)
	for _, i := range changed {
		if i < len(lv.rows) {
			lv.cache.Delete(lv.cacheKey(i, lv.rows[i]))
		}
	}
	for i := len(rows); i < len(lv.rows); i++ {
		lv.cache.Delete(lv.cacheKey(i, lv.rows[i]))
	}

	lv.rows = append([]selection.Row(nil), rows...)
	lv.view.SetCount(len(rows))

	if first && len(rows) > 0 {
		lv.view.FocusOn(lv.Settings.InitialFocus)
		if lv.Settings.VisibleStart >= 0 {
			lv.view.Start = lv.Settings.VisibleStart
			lv.view.SetCount(len(rows))
		}
	}
	return changed
}

func (lv *ListView) Rows() []selection.Row {
	return lv.rows
}

// SetContainerStyle replaces the style of the area behind the rows.
func (lv *ListView) SetContainerStyle(s style.Style) {
	lv.container = s
}

// SetRowHeight sets the height every row is drawn at. Cached textures of a
// different height are dropped.
func (lv *ListView) SetRowHeight(h int32) {
	if h == lv.rowHeight {
		return
	}
	lv.rowHeight = h
	lv.cache.Destroy()
}

// Invalidate drops every cached row texture.
func (lv *ListView) Invalidate() {
	lv.cache.Destroy()
}

func (lv *ListView) Focus() int {
	return lv.view.Focus
}

func (lv *ListView) VisibleStart() int {
	return lv.view.Start
}

func (lv *ListView) SetFocus(index int) {
	lv.view.FocusOn(index)
}

// HandleButton moves focus for directional and shoulder buttons. It
// reports whether the button was consumed.
func (lv *ListView) HandleButton(button constants.VirtualButton, pressed bool) bool {
	if !pressed {
		return lv.repeat.Release(button)
	}

	if time.Since(lv.lastInput) < lv.Settings.InputDelay {
		return false
	}
	if !lv.navigate(button) {
		return false
	}

	lv.repeat.Press(button)
	lv.lastInput = time.Now()
	return true
}

func (lv *ListView) navigate(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp:
		lv.view.Move(-1)
	case constants.VirtualButtonDown:
		lv.view.Move(1)
	case constants.VirtualButtonL1:
		lv.view.Page(-1)
	case constants.VirtualButtonR1:
		lv.view.Page(1)
	default:
		return false
	}
	return true
}

// Update applies repeats of a held navigation button. Call once per frame.
func (lv *ListView) Update() {
	if button := lv.repeat.Update(); button != constants.VirtualButtonUnassigned {
		lv.navigate(button)
	}
}

// ResetInput forgets held buttons, for example after a modal screen.
func (lv *ListView) ResetInput() {
	lv.repeat.Reset()
}

// HitTest returns the row drawn under a point in the last frame.
func (lv *ListView) HitTest(x, y int32) (int, bool) {
	return lv.hits.At(x, y)
}

// Render draws the title, the container and the visible rows inside bounds.
func (lv *ListView) Render(renderer *sdl.Renderer, bounds sdl.Rect, draw RowFunc) {
	lv.hits.Reset()

	if bg := lv.container.BackgroundColor; bg != nil {
		internal.DrawRoundedRect(renderer, &bounds, internal.Scale(lv.container.CornerRadiusOr(0)), internal.ToSDLColor(*bg))
	}

	inner := internal.ScaledPadding(lv.container.PaddingOr(style.Padding{}))
	left := bounds.X + lv.Settings.Margins.Left + inner.Left
	top := bounds.Y + lv.Settings.Margins.Top + inner.Top
	width := bounds.W - lv.Settings.Margins.Horizontal() - inner.Horizontal()
	bottom := bounds.Y + bounds.H - lv.Settings.Margins.Bottom - inner.Bottom

	top += lv.renderTitle(renderer, left, top, width)

	rowHeight := lv.rowHeight
	if rowHeight <= 0 {
		rowHeight = internal.Scale(60)
	}
	spacing := internal.Scale(lv.Settings.RowSpacing)

	lv.view.SetMaxVisible(max(int((bottom-top+spacing)/(rowHeight+spacing)), 1))

	if width != lv.cacheWidth {
		lv.cache.Destroy()
		lv.cacheWidth = width
	}
	if want := lv.view.MaxVisible * 2; want > lv.Settings.CacheSize {
		lv.cache.Resize(want)
	}

	start, end := lv.view.Visible()
	y := top
	for i := start; i < end; i++ {
		rect := sdl.Rect{X: left, Y: y, W: width, H: rowHeight}

		texture := lv.rowTexture(renderer, i, width, rowHeight, draw)
		if texture != nil {
			renderer.Copy(texture, nil, &rect)
		}

		if i == lv.view.Focus && !lv.Settings.HideFocus {
			radius := internal.Scale(style.Defaults().Row.CornerRadiusOr(0))
			internal.DrawRoundedOutline(renderer, &rect, radius, internal.Max32(internal.Scale(2), 1), internal.GetTheme().AccentColor)
		}

		lv.hits.Add(viewport.Region{Index: i, X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
		y += rowHeight + spacing
	}
}

func (lv *ListView) renderTitle(renderer *sdl.Renderer, x, y, width int32) int32 {
	if lv.Settings.Title == "" || internal.Fonts.ExtraLargeFont == nil {
		return 0
	}

	font := internal.Fonts.ExtraLargeFont
	title := internal.TruncateText(font, lv.Settings.Title, width)
	titleX := x
	switch lv.Settings.TitleAlign {
	case constants.TextAlignCenter:
		titleX = x + (width-internal.TextWidth(font, title))/2
	case constants.TextAlignRight:
		titleX = x + width - internal.TextWidth(font, title)
	}

	_, h := internal.RenderText(renderer, font, title, titleX, y, internal.GetTheme().TextColor)
	return h + lv.Settings.TitleSpacing + 5
}

func (lv *ListView) rowTexture(renderer *sdl.Renderer, index int, width, height int32, draw RowFunc) *sdl.Texture {
	key := lv.cacheKey(index, lv.rows[index])
	if texture := lv.cache.Get(key); texture != nil {
		return texture
	}

	texture, err := draw(renderer, lv.rows[index], width, height)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render row", "index", index, "error", err)
		return nil
	}
	lv.cache.Set(key, texture)
	return texture
}

// Keys include the position: duplicate ids may carry different content.
func (lv *ListView) cacheKey(index int, row selection.Row) string {
	return fmt.Sprintf("%d|%s|%t", index, row.ID.Key(), row.Selected)
}

// Destroy releases every cached texture.
func (lv *ListView) Destroy() {
	lv.cache.Destroy()
}
