package internal

import (
	"fmt"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, opens the window and fonts, and starts power button
// handling on device builds.
func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions()
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts(DefaultFontSizes)

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		window.initPowerButtonHandling(pbc)
	}
	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
