package selectmultiple

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"reflect"
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/assets"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal/listview"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	"github.com/veandco/go-sdl2/sdl"
)

// touchMouseID is SDL_TOUCH_MOUSEID, the device id of mouse events
// synthesized from touches.
const touchMouseID = math.MaxUint32

// SelectionChangeFunc receives the candidate selection produced by a toggle
// and the entry that was toggled. The owner decides whether to accept it and
// passes the accepted selection back through SetProps.
type SelectionChangeFunc func(next []selection.Entry, toggled selection.Entry)

// LabelRenderer draws the label of one row. The returned surface is freed
// by the component and clipped to the label area.
type LabelRenderer func(content any, s style.Style, selected bool) (*sdl.Surface, error)

// ListSettings is passed through to the list view and overrides the
// component's own list configuration.
type ListSettings struct {
	Title             string
	TitleAlign        constants.TextAlign
	Margins           internal.Padding
	RowSpacing        int32
	InputDelay        time.Duration
	InitialFocus      int
	VisibleStart      int
	HideFocus         bool
	FooterHelpItems   []FooterHelpItem // Replaces the default hints when set
	HideFooter        bool
	ConfirmButton     constants.VirtualButton // Default: VirtualButtonStart
	DisableBackButton bool
}

// Props configures a SelectMultiple. Items and OnSelectionsChange are
// required; everything else has a default.
type Props struct {
	Items              []selection.Item
	SelectedItems      []selection.Item
	OnSelectionsChange SelectionChangeFunc

	CheckboxSource         assets.Source // Default: assets.DefaultCheckbox()
	SelectedCheckboxSource assets.Source // Default: assets.DefaultCheckedCheckbox()
	RenderLabel            LabelRenderer // Default: text wrapped to two lines

	Style                 style.Style // Container
	RowStyle              style.Style
	CheckboxStyle         style.Style
	LabelStyle            style.Style
	SelectedRowStyle      style.Style
	SelectedCheckboxStyle style.Style
	SelectedLabelStyle    style.Style

	ListViewProps ListSettings
}

// Sheet collects the style props into a style sheet.
func (p Props) Sheet() style.Sheet {
	return style.Sheet{
		Container:        p.Style,
		Row:              p.RowStyle,
		Checkbox:         p.CheckboxStyle,
		Label:            p.LabelStyle,
		SelectedRow:      p.SelectedRowStyle,
		SelectedCheckbox: p.SelectedCheckboxStyle,
		SelectedLabel:    p.SelectedLabelStyle,
	}
}

// WithSheet returns p with every style prop taken from s.
func (p Props) WithSheet(s style.Sheet) Props {
	p.Style = s.Container
	p.RowStyle = s.Row
	p.CheckboxStyle = s.Checkbox
	p.LabelStyle = s.Label
	p.SelectedRowStyle = s.SelectedRow
	p.SelectedCheckboxStyle = s.SelectedCheckbox
	p.SelectedLabelStyle = s.SelectedLabel
	return p
}

func (p Props) validate() error {
	if p.Items == nil {
		return ErrMissingItems
	}
	if p.OnSelectionsChange == nil {
		return ErrMissingCallback
	}
	return nil
}

func (p Props) withDefaults() Props {
	if p.SelectedItems == nil {
		p.SelectedItems = []selection.Item{}
	}
	p.CheckboxSource = p.CheckboxSource.Or(assets.DefaultCheckbox())
	p.SelectedCheckboxSource = p.SelectedCheckboxSource.Or(assets.DefaultCheckedCheckbox())
	return p
}

// SelectMultiple is a controlled multi-select list. It derives its rows from
// Props on every SetProps and never changes the selection itself.
type SelectMultiple struct {
	props  Props
	rows   []selection.Row
	sheet  style.Sheet
	list   *listview.ListView
	images *internal.TextureCache
	failed map[string]bool
	logger *slog.Logger
}

// New validates props and builds the component. It does not touch SDL, so
// it may be called before Init.
func New(props Props) (*SelectMultiple, error) {
	logger := internal.ComponentLogger("select_multiple")
	if err := props.validate(); err != nil {
		logger.Error("Invalid props", "error", err)
		return nil, err
	}

	sm := &SelectMultiple{
		images: internal.NewTextureCacheWithSize(4),
		failed: make(map[string]bool),
		logger: logger,
	}
	sm.list = listview.New(listview.DefaultSettings(), style.Style{})
	sm.apply(props.withDefaults())
	return sm, nil
}

// SetProps replaces every prop. Rows are reconciled against the new
// selection and only rows whose id or selected state changed are redrawn.
func (sm *SelectMultiple) SetProps(props Props) error {
	if err := props.validate(); err != nil {
		sm.logger.Error("Invalid props", "error", err)
		return err
	}
	sm.apply(props.withDefaults())
	return nil
}

func (sm *SelectMultiple) apply(props Props) {
	previous := sm.props
	sheet := internal.GetTheme().Sheet().Over(props.Sheet())

	if !reflect.DeepEqual(sheet, sm.sheet) || (previous.RenderLabel == nil) != (props.RenderLabel == nil) {
		sm.list.Invalidate()
	}
	if previous.CheckboxSource.Key() != props.CheckboxSource.Key() ||
		previous.SelectedCheckboxSource.Key() != props.SelectedCheckboxSource.Key() {
		sm.images.Destroy()
		sm.list.Invalidate()
	}

	sm.props = props
	sm.sheet = sheet
	sm.rows = selection.Reconcile(props.Items, props.SelectedItems)

	sm.list.Settings = sm.listSettings()
	sm.list.SetContainerStyle(sheet.Container)
	changed := sm.list.SetRows(sm.rows)

	sm.logger.Debug("Props applied", "items", len(sm.rows), "selected", len(props.SelectedItems), "changed", len(changed))
}

// listSettings layers the pass-through list settings over the component's
// own; the data source and row renderer are never overridable.
func (sm *SelectMultiple) listSettings() listview.Settings {
	own := listview.DefaultSettings()
	row, _, _ := sm.sheet.ResolveRow(false)
	own.RowSpacing = row.SpacingOr(0)

	lp := sm.props.ListViewProps
	return own.Merge(listview.Settings{
		Title:        lp.Title,
		TitleAlign:   lp.TitleAlign,
		Margins:      lp.Margins,
		RowSpacing:   lp.RowSpacing,
		InputDelay:   lp.InputDelay,
		InitialFocus: lp.InitialFocus,
		VisibleStart: lp.VisibleStart,
		HideFocus:    lp.HideFocus,
	})
}

// Rows returns the annotated rows for the current props.
func (sm *SelectMultiple) Rows() []selection.Row {
	return append([]selection.Row(nil), sm.rows...)
}

// Focus is the index of the row that the A button toggles.
func (sm *SelectMultiple) Focus() int {
	return sm.list.Focus()
}

// Activate toggles the row at index and reports the resulting candidate
// selection to OnSelectionsChange. It returns false for an index outside
// the rows.
func (sm *SelectMultiple) Activate(index int) bool {
	if index < 0 || index >= len(sm.rows) {
		return false
	}

	row := sm.rows[index]
	next, toggled := selection.Toggle(sm.props.SelectedItems, row)
	sm.logger.Debug("Row toggled", "index", index, "id", row.ID.String(), "selected", !row.Selected, "count", len(next))

	sm.props.OnSelectionsChange(next, toggled)
	return true
}

// HandleEvent applies one SDL event: directional input moves focus, A and
// taps toggle, the confirm button confirms and B cancels.
func (sm *SelectMultiple) HandleEvent(event sdl.Event) Action {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return ActionQuit

	case *sdl.MouseButtonEvent:
		// Touches also arrive as FINGERUP; ignore their synthesized clicks.
		if e.Type != sdl.MOUSEBUTTONUP || e.Button != sdl.BUTTON_LEFT || e.Which == touchMouseID {
			return ActionNone
		}
		return sm.tap(e.X, e.Y)

	case *sdl.TouchFingerEvent:
		if e.Type != sdl.FINGERUP {
			return ActionNone
		}
		window := internal.GetWindow()
		return sm.tap(int32(e.X*float32(window.GetWidth())), int32(e.Y*float32(window.GetHeight())))

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
		processor := internal.GetInputProcessor()
		if processor == nil {
			return ActionNone
		}
		inputEvent := processor.ProcessSDLEvent(event)
		if inputEvent == nil {
			return ActionNone
		}
		return sm.handleButton(inputEvent.Button, inputEvent.Pressed)
	}
	return ActionNone
}

func (sm *SelectMultiple) handleButton(button constants.VirtualButton, pressed bool) Action {
	if sm.list.HandleButton(button, pressed) || !pressed {
		return ActionNone
	}

	switch button {
	case constants.VirtualButtonA:
		if sm.Activate(sm.list.Focus()) {
			return ActionToggled
		}
	case sm.confirmButton():
		return ActionConfirmed
	case constants.VirtualButtonB:
		if !sm.props.ListViewProps.DisableBackButton {
			return ActionCancelled
		}
	}
	return ActionNone
}

func (sm *SelectMultiple) tap(x, y int32) Action {
	index, ok := sm.list.HitTest(x, y)
	if !ok {
		return ActionNone
	}
	sm.list.SetFocus(index)
	if sm.Activate(index) {
		return ActionToggled
	}
	return ActionNone
}

func (sm *SelectMultiple) confirmButton() constants.VirtualButton {
	if b := sm.props.ListViewProps.ConfirmButton; b != constants.VirtualButtonUnassigned {
		return b
	}
	return constants.VirtualButtonStart
}

// Run shows the component until the user confirms or backs out. Toggles
// are reported through OnSelectionsChange while it runs. Returns
// ErrCancelled when the user presses back or closes the window.
func (sm *SelectMultiple) Run() (*SelectMultipleResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("run", errors.New("toolkit not initialized"))
	}
	renderer := window.Renderer
	sm.list.ResetInput()

	for {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch sm.HandleEvent(event) {
			case ActionConfirmed:
				return &SelectMultipleResult{
					Action:            ActionConfirmed,
					Selected:          selection.NormalizeAll(sm.props.SelectedItems),
					FocusIndex:        sm.list.Focus(),
					VisibleStartIndex: sm.list.VisibleStart(),
				}, nil
			case ActionCancelled, ActionQuit:
				return nil, ErrCancelled
			}
		}

		sm.list.Update()

		window.RenderBackground()
		sm.Render(renderer)
		window.Present()
	}
}

// Render draws the list, the selection count and the footer.
func (sm *SelectMultiple) Render(renderer *sdl.Renderer) {
	window := internal.GetWindow()
	font := internal.Fonts.SmallFont
	settings := sm.props.ListViewProps
	bottom := sm.list.Settings.Margins.Bottom

	bounds := sdl.Rect{W: window.GetWidth(), H: window.GetHeight()}
	if !settings.HideFooter {
		bounds.H -= footerHeight(font, bottom)
	}

	sm.list.SetRowHeight(sm.rowHeight())
	sm.list.Render(renderer, bounds, sm.renderRow)

	if settings.Title != "" && font != nil {
		count := localizer.SelectedCount(len(sm.props.SelectedItems))
		x := bounds.W - sm.list.Settings.Margins.Right - internal.TextWidth(font, count)
		internal.RenderText(renderer, font, count, x, sm.list.Settings.Margins.Top, internal.GetTheme().HintColor)
	}

	if !settings.HideFooter {
		items := settings.FooterHelpItems
		if len(items) == 0 {
			items = defaultSelectFooter(localizer, settings.DisableBackButton)
		}
		renderFooter(renderer, font, items, bottom, true, true)
	}
}

// rowHeight is the tallest row either selection state can produce, so
// every row shares one height.
func (sm *SelectMultiple) rowHeight() int32 {
	var height int32
	for _, selected := range []bool{false, true} {
		row, checkbox, label := sm.sheet.ResolveRow(selected)
		pad := internal.ScaledPadding(row.PaddingOr(style.Padding{}))

		content := internal.Scale(checkbox.HeightOr(0))
		if font := internal.FontFor(label.FontSizeOr(style.FontSizeSmall)); font != nil && sm.props.RenderLabel == nil {
			lines := int32(max(label.MaxLinesOr(constants.DefaultLabelMaxLines), 1))
			content = internal.Max32(content, (lines-1)*internal.LineHeight(font)+int32(font.Height()))
		}

		height = internal.Max32(height, internal.Max32(internal.Scale(row.HeightOr(0)), content+pad.Vertical()))
	}
	return height
}

func (sm *SelectMultiple) renderRow(renderer *sdl.Renderer, row selection.Row, width, height int32) (*sdl.Texture, error) {
	rowStyle, checkboxStyle, labelStyle := sm.sheet.ResolveRow(row.Selected)

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, width, height)
	if err != nil {
		return nil, fmt.Errorf("create row texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	previous := renderer.GetRenderTarget()
	if err := renderer.SetRenderTarget(texture); err != nil {
		texture.Destroy()
		return nil, fmt.Errorf("target row texture: %w", err)
	}
	defer renderer.SetRenderTarget(previous)

	renderer.SetDrawColor(0, 0, 0, 0)
	renderer.Clear()

	if bg := rowStyle.BackgroundColor; bg != nil {
		bounds := sdl.Rect{W: width, H: height}
		internal.DrawRoundedRect(renderer, &bounds, internal.Scale(rowStyle.CornerRadiusOr(0)), internal.ToSDLColor(*bg))
	}

	pad := internal.ScaledPadding(rowStyle.PaddingOr(style.Padding{}))
	x := pad.Left + sm.drawCheckbox(renderer, row.Selected, checkboxStyle, pad.Left, height)
	sm.drawLabel(renderer, row, labelStyle, x, width-pad.Right-x, height)

	return texture, nil
}

// drawCheckbox draws the checkbox image for the selection state and returns
// the width it used including its spacing.
func (sm *SelectMultiple) drawCheckbox(renderer *sdl.Renderer, selected bool, s style.Style, x, rowHeight int32) int32 {
	w, h := internal.Scale(s.WidthOr(0)), internal.Scale(s.HeightOr(0))
	if w <= 0 || h <= 0 {
		return 0
	}

	source := sm.props.CheckboxSource
	if selected {
		source = sm.props.SelectedCheckboxSource
	}

	if texture := sm.checkboxTexture(renderer, source, w, h); texture != nil {
		tint := s.TintOr(color.RGBA{R: 255, G: 255, B: 255, A: 255})
		texture.SetColorMod(tint.R, tint.G, tint.B)
		texture.SetAlphaMod(tint.A)
		renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: (rowHeight - h) / 2, W: w, H: h})
	}

	return w + internal.Scale(s.SpacingOr(0))
}

func (sm *SelectMultiple) checkboxTexture(renderer *sdl.Renderer, source assets.Source, w, h int32) *sdl.Texture {
	key := fmt.Sprintf("%s@%dx%d", source.Key(), w, h)
	if texture := sm.images.Get(key); texture != nil {
		return texture
	}
	if sm.failed[key] {
		return nil
	}

	texture, err := internal.LoadImageTexture(renderer, source, w, h)
	if err != nil {
		sm.failed[key] = true
		sm.logger.Error("Failed to load checkbox image", "source", source.Key(), "error", err)
		return nil
	}
	sm.images.Set(key, texture)
	return texture
}

func (sm *SelectMultiple) drawLabel(renderer *sdl.Renderer, row selection.Row, s style.Style, x, width, rowHeight int32) {
	if width <= 0 {
		return
	}

	if sm.props.RenderLabel != nil {
		sm.drawCustomLabel(renderer, row, s, x, width, rowHeight)
		return
	}

	font := internal.FontFor(s.FontSizeOr(style.FontSizeSmall))
	if font == nil {
		return
	}

	lines := internal.WrapText(font, row.Text(), width, s.MaxLinesOr(constants.DefaultLabelMaxLines))
	lineHeight := internal.LineHeight(font)
	textHeight := int32(len(lines)-1)*lineHeight + int32(font.Height())
	y := (rowHeight - textHeight) / 2
	textColor := internal.ToSDLColor(s.TextColorOr(color.RGBA{R: 255, G: 255, B: 255, A: 255}))

	for i, line := range lines {
		internal.RenderText(renderer, font, line, x, y+int32(i)*lineHeight, textColor)
	}
}

func (sm *SelectMultiple) drawCustomLabel(renderer *sdl.Renderer, row selection.Row, s style.Style, x, width, rowHeight int32) {
	surface, err := sm.props.RenderLabel(row.Content, s, row.Selected)
	if err != nil || surface == nil {
		sm.logger.Error("Custom label failed", "id", row.ID.String(), "error", err)
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		sm.logger.Error("Custom label texture failed", "id", row.ID.String(), "error", err)
		return
	}
	defer texture.Destroy()

	w, h := internal.Min32(surface.W, width), internal.Min32(surface.H, rowHeight)
	renderer.Copy(texture, &sdl.Rect{W: w, H: h}, &sdl.Rect{X: x, Y: (rowHeight - h) / 2, W: w, H: h})
}

// Destroy releases cached textures. The component can still be rendered
// afterwards; textures are recreated on demand.
func (sm *SelectMultiple) Destroy() {
	sm.list.Destroy()
	sm.images.Destroy()
	sm.failed = make(map[string]bool)
}
