package selectmultiple

import (
	"errors"
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal/locale"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// ConfirmSettings configures the confirm dialog.
type ConfirmSettings struct {
	// Options are the choices, left to right. Default: localized Yes, No.
	// The first option is the confirming one.
	Options []string
	// ConfirmButton accepts the highlighted option (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton cancels the dialog (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton hides the back hint and ignores the back button
	DisableBackButton bool
	// InitialSelection is the index of the highlighted option (default: 0)
	InitialSelection int
}

type confirmController struct {
	message       string
	options       []string
	selectedIndex int
	confirmButton constants.VirtualButton
	backButton    constants.VirtualButton
	disableBack   bool
	footer        []FooterHelpItem
	inputDelay    time.Duration
	lastInputTime time.Time
	confirmed     bool
	cancelled     bool
}

func newConfirmController(message string, footer []FooterHelpItem, settings ConfirmSettings) *confirmController {
	c := &confirmController{
		message:       message,
		options:       settings.Options,
		selectedIndex: settings.InitialSelection,
		confirmButton: settings.ConfirmButton,
		backButton:    settings.BackButton,
		disableBack:   settings.DisableBackButton,
		footer:        footer,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	if len(c.options) == 0 {
		c.options = []string{localizer.T(locale.Yes), localizer.T(locale.No)}
	}
	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.backButton == constants.VirtualButtonUnassigned {
		c.backButton = constants.VirtualButtonB
	}
	if c.selectedIndex < 0 || c.selectedIndex >= len(c.options) {
		c.selectedIndex = 0
	}
	if c.footer == nil {
		if !c.disableBack {
			c.footer = append(c.footer, FooterHelpItem{ButtonName: "B", HelpText: localizer.T(locale.Back)})
		}
		c.footer = append(c.footer, FooterHelpItem{ButtonName: "A", HelpText: localizer.T(locale.Done)})
	}
	return c
}

// Confirm shows message with horizontally selectable options, navigated
// with left/right. Returns ErrCancelled if the user presses back.
func Confirm(message string, footerHelpItems []FooterHelpItem, settings ConfirmSettings) (*ConfirmResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("confirm", errors.New("toolkit not initialized"))
	}
	processor := internal.GetInputProcessor()
	c := newConfirmController(message, footerHelpItems, settings)

	for !c.confirmed && !c.cancelled {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				c.cancelled = true

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent, *sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
				inputEvent := processor.ProcessSDLEvent(event)
				if inputEvent != nil && inputEvent.Pressed {
					c.handleButton(inputEvent.Button)
				}
			}
		}

		window.RenderBackground()
		c.render(window.Renderer, window)
		window.Present()
	}

	if c.cancelled {
		return nil, ErrCancelled
	}
	return &ConfirmResult{
		Confirmed:     c.selectedIndex == 0,
		SelectedIndex: c.selectedIndex,
	}, nil
}

func (c *confirmController) handleButton(button constants.VirtualButton) {
	if time.Since(c.lastInputTime) < c.inputDelay {
		return
	}
	c.lastInputTime = time.Now()

	switch button {
	case constants.VirtualButtonLeft:
		c.selectedIndex--
		if c.selectedIndex < 0 {
			c.selectedIndex = len(c.options) - 1
		}
	case constants.VirtualButtonRight:
		c.selectedIndex++
		if c.selectedIndex >= len(c.options) {
			c.selectedIndex = 0
		}
	case c.confirmButton, constants.VirtualButtonStart:
		c.confirmed = true
	case c.backButton:
		if !c.disableBack {
			c.cancelled = true
		}
	}
}

func (c *confirmController) render(renderer *sdl.Renderer, window *internal.Window) {
	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	messageFont := internal.Fonts.SmallFont
	optionFont := internal.Fonts.MediumFont
	if messageFont == nil || optionFont == nil {
		return
	}

	maxMessageWidth := internal.Min32(windowWidth*3/4, 800)
	messageHeight := internal.MultilineTextHeight(c.message, messageFont, maxMessageWidth)
	spacing := internal.Scale(30)
	totalHeight := messageHeight + spacing + int32(optionFont.Height())

	startY := (windowHeight - totalHeight) / 2
	centerX := windowWidth / 2

	internal.RenderMultilineText(renderer, c.message, messageFont, maxMessageWidth, centerX, startY,
		internal.GetTheme().TextColor, constants.TextAlignCenter)

	c.renderOptions(renderer, centerX, startY+messageHeight+spacing, optionFont)

	renderFooter(renderer, internal.Fonts.SmallFont, c.footer, internal.Scale(20), false, true)
}

// renderOptions draws "<  Yes  |  No  >" with the highlighted option bright.
func (c *confirmController) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font) {
	theme := internal.GetTheme()
	arrowColor := theme.HintColor
	selectedColor := theme.TextColor
	unselectedColor := sdl.Color{R: 100, G: 100, B: 100, A: 255}
	separatorColor := sdl.Color{R: 80, G: 80, B: 80, A: 255}

	leftArrow, rightArrow, separator := "<  ", "  >", "  |  "
	separatorWidth := internal.TextWidth(font, separator)

	totalWidth := internal.TextWidth(font, leftArrow) + internal.TextWidth(font, rightArrow)
	for i, opt := range c.options {
		totalWidth += internal.TextWidth(font, opt)
		if i < len(c.options)-1 {
			totalWidth += separatorWidth
		}
	}

	x := centerX - totalWidth/2
	w, _ := internal.RenderText(renderer, font, leftArrow, x, y, arrowColor)
	x += w

	for i, opt := range c.options {
		color := unselectedColor
		if i == c.selectedIndex {
			color = selectedColor
		}
		internal.RenderText(renderer, font, opt, x, y, color)
		x += internal.TextWidth(font, opt)

		if i < len(c.options)-1 {
			internal.RenderText(renderer, font, separator, x, y, separatorColor)
			x += separatorWidth
		}
	}

	internal.RenderText(renderer, font, rightArrow, x, y, arrowColor)
}
